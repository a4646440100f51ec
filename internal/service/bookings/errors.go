package bookings

import (
	"errors"
)

var (
	// ErrInvalidRange возвращается, когда начальный слот позже конечного
	ErrInvalidRange = errors.New("bookings: invalid slot range")

	// ErrPastDate возвращается при попытке бронирования на прошедшую дату
	ErrPastDate = errors.New("bookings: booking date is in the past")

	// ErrSlotInPast возвращается, когда слот на сегодня уже начался или прошел
	ErrSlotInPast = errors.New("bookings: one or more slots are in the past")

	// ErrSlotConflict возвращается, когда хотя бы один слот диапазона уже занят
	ErrSlotConflict = errors.New("bookings: slot already booked")

	// ErrNotBooked возвращается при отмене свободного слота
	ErrNotBooked = errors.New("bookings: slot is not booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")
)

// rejectionReason возвращает метку причины отказа для метрик
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, ErrPastDate):
		return "past_date"
	case errors.Is(err, ErrSlotInPast):
		return "slot_in_past"
	case errors.Is(err, ErrSlotConflict):
		return "slot_conflict"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
