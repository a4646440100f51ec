package transactions

import "errors"

var (
	// ErrNoTransactions возвращается, когда в журнале еще нет транзакций
	ErrNoTransactions = errors.New("transactions: no transactions yet")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transactions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("transactions: internal error")
)
