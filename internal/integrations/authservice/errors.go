package authservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пара логин/пароль не найдена
	ErrUserNotFound = errors.New("authservice: user not found")

	// ErrInvalidAccount возвращается при некорректной учетной записи в конфигурации
	ErrInvalidAccount = errors.New("authservice: invalid account")
)
