package export_report

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

type TransactionService interface {
	ExportDayReport(ctx context.Context, date domain.Date) (string, int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
