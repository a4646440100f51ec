package get_transactions

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

type TransactionService interface {
	GetTransactions(ctx context.Context, date *domain.Date) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
