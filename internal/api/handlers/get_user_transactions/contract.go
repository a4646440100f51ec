package get_user_transactions

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

type TransactionService interface {
	GetUserTransactions(ctx context.Context, user string) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
