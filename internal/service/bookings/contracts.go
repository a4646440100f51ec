package bookings

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	IsBooked(date domain.Date, station, slot int) bool
	BookedBy(date domain.Date, station, slot int) (string, bool)
	TrySet(date domain.Date, station, slot int, user string) bool
	Clear(date domain.Date, station, slot int)
	Snapshot(date domain.Date) domain.Grid
}

// LedgerRepository интерфейс журнала транзакций
type LedgerRepository interface {
	Append(tx domain.Transaction)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета метрик бронирований
type MetricsRecorder interface {
	ObserveBooking(hours int, amount float64)
	ObserveRejection(reason string)
	ObserveCancellation()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
