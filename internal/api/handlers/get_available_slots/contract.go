package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

type BookingService interface {
	Availability(ctx context.Context, date domain.Date) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
