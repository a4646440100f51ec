package login

import "github.com/m04kA/SMC-StationBooking/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Screen string `json:"screen"`
}

// FromDomainUser конвертирует пользователя в HTTP response.
// Администратор попадает на панель администратора, остальные на экран бронирования.
func FromDomainUser(user *domain.User) *LoginResponse {
	screen := screenCustomer
	if user.IsAdmin() {
		screen = screenAdmin
	}

	return &LoginResponse{
		UserID: user.ID,
		Role:   string(user.Role),
		Screen: screen,
	}
}
