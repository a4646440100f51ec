package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

// UseCase use case для создания бронирования с выпуском квитанции
type UseCase struct {
	engine       BookingEngine
	receiptSink  ReceiptSink
	ledgerRepo   LedgerRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine BookingEngine,
	receiptSink ReceiptSink,
	ledgerRepo LedgerRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		engine:       engine,
		receiptSink:  receiptSink,
		ledgerRepo:   ledgerRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Ошибки движка возвращаются как есть. Ошибка приемника квитанций
// не откатывает бронирование и возвращается в Response.ReceiptError.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, date=%s, station=%d, slots=%d..%d",
		req.User, req.Date, req.Station, req.FromSlot, req.ToSlot)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Бронируем через движок
	tx, err := uc.engine.Reserve(ctx, &models.ReserveRequest{
		Date:     req.Date,
		Station:  req.Station,
		FromSlot: req.FromSlot,
		ToSlot:   req.ToSlot,
		User:     req.User,
	}, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: reservation rejected: %v", err)
		return nil, err
	}
	uc.metrics.SetLedgerSize(uc.ledgerRepo.Len())

	price := domain.CalculatePrice(tx.FromSlot, tx.ToSlot)
	resp := &Response{
		ID:            tx.ID,
		User:          tx.User,
		Station:       tx.Station,
		ResourceID:    tx.ResourceID,
		FromSlot:      tx.FromSlot,
		ToSlot:        tx.ToSlot,
		TimeSlotLabel: tx.TimeSlotLabel,
		BookingDate:   tx.BookingDate,
		CreatedAt:     tx.CreatedAt,
		Hours:         price.Hours,
		BaseCost:      price.BaseCost,
		Discount:      price.Discount,
		AmountPaid:    tx.AmountPaid,
	}

	// 3. Выпускаем квитанцию
	ref, err := uc.receiptSink.Emit(ctx, tx)
	if err != nil {
		uc.metrics.ObserveReceipt(false)
		uc.logger.Error("CreateBooking: booking id=%s committed, receipt failed: %v", tx.ID, err)
		resp.ReceiptError = fmt.Errorf("%w: %w", ErrReceiptFailed, err)
		return resp, nil
	}
	uc.metrics.ObserveReceipt(true)
	resp.ReceiptRef = ref

	uc.logger.Info("CreateBooking: successfully created booking id=%s, receipt=%s", tx.ID, ref)
	return resp, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveReceipt(bool) {}
func (noopMetrics) SetLedgerSize(int)   {}
