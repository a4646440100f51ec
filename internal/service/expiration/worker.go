package expiration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Sweeper интерфейс сервиса очистки
type Sweeper interface {
	Sweep(ctx context.Context, date domain.Date, now time.Time)
}

// Worker периодически запускает очистку просроченных слотов на сегодня
type Worker struct {
	sweeper      Sweeper
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewWorker создает воркер очистки с заданным интервалом
func NewWorker(sweeper Sweeper, interval time.Duration, logger Logger) *Worker {
	return &Worker{
		sweeper:      sweeper,
		interval:     interval,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run блокируется до отмены ctx, вызывая очистку на каждом тике
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Expiration worker started, interval=%s", w.interval)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Expiration worker stopped")
			return
		case <-ticker.C:
			now := w.timeProvider.Now()
			w.sweeper.Sweep(ctx, domain.DateOf(now), now)
		}
	}
}

// Start запускает Run в отдельной горутине
func (w *Worker) Start(ctx context.Context) {
	go w.Run(ctx)
}
