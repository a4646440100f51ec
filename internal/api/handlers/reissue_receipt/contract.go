package reissue_receipt

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

type TransactionService interface {
	ReissueLastReceipt(ctx context.Context) (*models.TransactionResponse, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
