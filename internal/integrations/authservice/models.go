package authservice

import "github.com/m04kA/SMC-StationBooking/internal/domain"

// Account учетная запись пользователя
type Account struct {
	Username string
	Password string
	Role     domain.Role
}
