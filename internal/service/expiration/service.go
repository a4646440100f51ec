package expiration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Service освобождает слоты, время которых уже прошло.
// Обрабатывается только дата, совпадающая с сегодняшним днем относительно now:
// брони на другие даты этим путем никогда не освобождаются.
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса очистки
func NewService(
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Sweep освобождает на дату date занятые слоты, у которых текущий час
// строго больше часа начала слота.
func (s *Service) Sweep(ctx context.Context, date domain.Date, now time.Time) {
	if date != domain.DateOf(now) {
		return
	}

	started := time.Now()
	currentHour := now.Hour()
	released := 0

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for station := 0; station < domain.NumStations; station++ {
			for slot := 0; slot < domain.NumSlots; slot++ {
				if currentHour <= domain.SlotStartHour(slot) {
					continue
				}
				user, booked := s.slotRepo.BookedBy(date, station, slot)
				if !booked {
					continue
				}
				s.slotRepo.Clear(date, station, slot)
				released++
				s.logger.Debug("Sweep: released %s at %s on %s (booked by %s)",
					domain.StationLabel(station), domain.SlotLabel(slot), date, user)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Sweep: failed for %s: %v", date, err)
		return
	}

	s.metrics.ObserveSweep(released, time.Since(started))
	if released > 0 {
		s.logger.Info("Sweep: released %d expired slots on %s", released, date)
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveSweep(int, time.Duration) {}
