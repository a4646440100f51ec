package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date format, expected yyyy-MM-dd"
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

// Handle GET /api/v1/slots
// Query params: date (required, yyyy-MM-dd)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Availability(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /slots - Failed to get availability: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Availability fetched: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
