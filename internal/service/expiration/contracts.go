package expiration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// SlotRepository интерфейс хранилища слотов
type SlotRepository interface {
	BookedBy(date domain.Date, station, slot int) (string, bool)
	Clear(date domain.Date, station, slot int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета метрик очистки
type MetricsRecorder interface {
	ObserveSweep(released int, took time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
