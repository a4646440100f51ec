package login

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

type AuthClient interface {
	Lookup(ctx context.Context, username, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
