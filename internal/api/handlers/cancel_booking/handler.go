package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

const (
	msgInvalidDate    = "invalid date format, expected yyyy-MM-dd"
	msgInvalidStation = "invalid station"
	msgInvalidSlot    = "invalid slot"
	msgNotBooked      = "slot is not booked"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/slots/{date}/{station}/{slot}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := domain.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	station, err := strconv.Atoi(vars["station"])
	if err != nil || !domain.IsValidStation(station) {
		h.logger.Warn("DELETE /slots - Invalid station: %s", vars["station"])
		handlers.RespondBadRequest(w, msgInvalidStation)
		return
	}

	slot, err := strconv.Atoi(vars["slot"])
	if err != nil || !domain.IsValidSlot(slot) {
		h.logger.Warn("DELETE /slots - Invalid slot: %s", vars["slot"])
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	err = h.service.Cancel(r.Context(), &models.CancelRequest{
		Date:    date,
		Station: station,
		Slot:    slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNotBooked):
			h.logger.Warn("DELETE /slots - Not booked: date=%s, station=%d, slot=%d", date, station, slot)
			handlers.RespondConflict(w, msgNotBooked)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /slots - Failed to cancel: date=%s, station=%d, slot=%d, error=%v",
				date, station, slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots - Slot released: date=%s, station=%d, slot=%d", date, station, slot)
	w.WriteHeader(http.StatusNoContent)
}
