package transactions

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// LedgerRepository интерфейс журнала транзакций
type LedgerRepository interface {
	All() []domain.Transaction
	ByUser(user string) []domain.Transaction
	ByDate(date domain.Date) []domain.Transaction
	Last() (domain.Transaction, bool)
}

// ReportWriter интерфейс выгрузки дневного отчета
type ReportWriter interface {
	WriteDayReport(ctx context.Context, date domain.Date, transactions []domain.Transaction) (string, error)
}

// ReceiptSink интерфейс приемника квитанций
type ReceiptSink interface {
	Emit(ctx context.Context, tx *domain.Transaction) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
