package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

// BookingEngine интерфейс движка бронирования
type BookingEngine interface {
	Reserve(ctx context.Context, req *models.ReserveRequest, now time.Time) (*domain.Transaction, error)
}

// ReceiptSink интерфейс приемника квитанций
type ReceiptSink interface {
	Emit(ctx context.Context, tx *domain.Transaction) (string, error)
}

// LedgerRepository интерфейс журнала транзакций (только размер, для метрик)
type LedgerRepository interface {
	Len() int
}

// MetricsRecorder интерфейс для учета метрик квитанций
type MetricsRecorder interface {
	ObserveReceipt(ok bool)
	SetLedgerSize(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
