package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

// Service движок бронирования станций.
// Собственного состояния не хранит: работает поверх переданных хранилищ.
type Service struct {
	slotRepo   SlotRepository
	ledgerRepo LedgerRepository
	txManager  TransactionManager
	metrics    MetricsRecorder
	logger     Logger
}

// NewService создает новый экземпляр движка бронирования
func NewService(
	slotRepo SlotRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		slotRepo:   slotRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		metrics:    metrics,
		logger:     logger,
	}
}

// Reserve бронирует диапазон слотов [FromSlot, ToSlot] станции на дату.
// Либо все слоты диапазона становятся занятыми, либо ни один.
// Проверка занятости, запись слотов и добавление транзакции в журнал
// выполняются в одной сериализуемой транзакции.
func (s *Service) Reserve(ctx context.Context, req *models.ReserveRequest, now time.Time) (*domain.Transaction, error) {
	s.logger.Info("Reserve: user=%s, date=%s, station=%d, slots=%d..%d",
		req.User, req.Date, req.Station, req.FromSlot, req.ToSlot)

	tx, err := s.reserve(ctx, req, now)
	if err != nil {
		s.metrics.ObserveRejection(rejectionReason(err))
		return nil, err
	}

	s.metrics.ObserveBooking(tx.ToSlot-tx.FromSlot+1, tx.AmountPaid.InexactFloat64())
	s.logger.Info("Reserve: booked id=%s, user=%s, %s %s on %s, paid=%s",
		tx.ID, tx.User, tx.ResourceID, tx.TimeSlotLabel, tx.BookingDate, tx.AmountPaid.StringFixed(2))
	return tx, nil
}

func (s *Service) reserve(ctx context.Context, req *models.ReserveRequest, now time.Time) (*domain.Transaction, error) {
	// 1. Валидация входных данных
	if err := validateReserveRequest(req); err != nil {
		s.logger.Warn("Reserve: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка диапазона
	if req.FromSlot > req.ToSlot {
		s.logger.Warn("Reserve: invalid range %d..%d", req.FromSlot, req.ToSlot)
		return nil, ErrInvalidRange
	}

	// 3. Проверка даты и времени относительно now
	if err := validateTime(req.Date, req.FromSlot, req.ToSlot, now); err != nil {
		s.logger.Warn("Reserve: time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Transaction

	// 4. Проверка, запись и журнал в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Весь диапазон должен быть свободен до любых изменений
		for slot := req.FromSlot; slot <= req.ToSlot; slot++ {
			if s.slotRepo.IsBooked(req.Date, req.Station, slot) {
				s.logger.Warn("Reserve: slot %d of %s on %s already booked",
					slot, domain.StationLabel(req.Station), req.Date)
				return fmt.Errorf("%w: %s at %s", ErrSlotConflict, domain.StationLabel(req.Station), domain.SlotLabel(slot))
			}
		}

		// 4.2. Стоимость
		price := domain.CalculatePrice(req.FromSlot, req.ToSlot)

		// 4.3. Занимаем слоты
		for slot := req.FromSlot; slot <= req.ToSlot; slot++ {
			if !s.slotRepo.TrySet(req.Date, req.Station, slot, req.User) {
				// Недостижимо при сериализованном доступе
				s.logger.Error("Reserve: slot %d of %s on %s taken after pre-check",
					slot, domain.StationLabel(req.Station), req.Date)
				s.rollback(req, slot)
				return ErrSlotConflict
			}
		}

		// 4.4. Запись в журнал
		tx := domain.Transaction{
			ID:            uuid.New(),
			User:          req.User,
			Station:       req.Station,
			ResourceID:    domain.StationLabel(req.Station),
			FromSlot:      req.FromSlot,
			ToSlot:        req.ToSlot,
			TimeSlotLabel: domain.SlotRangeLabel(req.FromSlot, req.ToSlot),
			AmountPaid:    price.Total,
			CreatedAt:     now,
			BookingDate:   req.Date,
		}
		s.ledgerRepo.Append(tx)

		result = &tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// rollback освобождает слоты диапазона, занятые до слота failedAt
func (s *Service) rollback(req *models.ReserveRequest, failedAt int) {
	for slot := req.FromSlot; slot < failedAt; slot++ {
		s.slotRepo.Clear(req.Date, req.Station, slot)
	}
}

// Cancel освобождает один занятый слот.
// Журнал транзакций не меняется.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) error {
	s.logger.Info("Cancel: date=%s, station=%d, slot=%d", req.Date, req.Station, req.Slot)

	if err := validateCancelRequest(req); err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		return err
	}

	var bookedBy string
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		user, ok := s.slotRepo.BookedBy(req.Date, req.Station, req.Slot)
		if !ok {
			return ErrNotBooked
		}
		bookedBy = user
		s.slotRepo.Clear(req.Date, req.Station, req.Slot)
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: %s at %s on %s: %v",
			domain.StationLabel(req.Station), domain.SlotLabel(req.Slot), req.Date, err)
		return err
	}

	s.metrics.ObserveCancellation()
	s.logger.Info("Cancel: released %s at %s on %s (was booked by %s)",
		domain.StationLabel(req.Station), domain.SlotLabel(req.Slot), req.Date, bookedBy)
	return nil
}

// Availability возвращает сетку занятости станций на дату
func (s *Service) Availability(ctx context.Context, date domain.Date) (*models.AvailabilityResponse, error) {
	var grid domain.Grid

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		grid = s.slotRepo.Snapshot(date)
		return nil
	})
	if err != nil {
		s.logger.Error("Availability: failed to read grid for %s: %v", date, err)
		return nil, err
	}

	return models.FromDomainGrid(date, grid), nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveBooking(int, float64) {}
func (noopMetrics) ObserveRejection(string)     {}
func (noopMetrics) ObserveCancellation()        {}
