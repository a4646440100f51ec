package bookings

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

// validateReserveRequest валидирует входные данные бронирования
func validateReserveRequest(req *models.ReserveRequest) error {
	if req.User == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidStation(req.Station) {
		return fmt.Errorf("%w: station must be in [0, %d)", ErrInvalidInput, domain.NumStations)
	}

	if !domain.IsValidSlot(req.FromSlot) || !domain.IsValidSlot(req.ToSlot) {
		return fmt.Errorf("%w: slots must be in [0, %d)", ErrInvalidInput, domain.NumSlots)
	}

	return nil
}

// validateCancelRequest валидирует входные данные отмены
func validateCancelRequest(req *models.CancelRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidStation(req.Station) {
		return fmt.Errorf("%w: station must be in [0, %d)", ErrInvalidInput, domain.NumStations)
	}

	if !domain.IsValidSlot(req.Slot) {
		return fmt.Errorf("%w: slot must be in [0, %d)", ErrInvalidInput, domain.NumSlots)
	}

	return nil
}

// validateTime проверяет дату и слоты относительно текущего времени.
// На сегодня слот доступен, только если он начинается строго после текущего часа:
// слот, который идет прямо сейчас, тоже отклоняется.
func validateTime(date domain.Date, fromSlot, toSlot int, now time.Time) error {
	today := domain.DateOf(now)

	if date.Before(today) {
		return ErrPastDate
	}

	if date != today {
		return nil
	}

	currentHour := now.Hour()
	for slot := fromSlot; slot <= toSlot; slot++ {
		if domain.SlotStartHour(slot) <= currentHour {
			return fmt.Errorf("%w: %s has started", ErrSlotInPast, domain.SlotLabel(slot))
		}
	}

	return nil
}
