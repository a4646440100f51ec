package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected yyyy-MM-dd"
	msgInvalidRange       = "invalid time range"
	msgPastDate           = "cannot book for past dates"
	msgSlotInPast         = "one or more slots are in the past"
	msgSlotConflict       = "slot already booked"
	msgInvalidInput       = "invalid booking parameters"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user=%s, station=%d", req.User, useCaseReq.Station)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, bookings.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: user=%s", req.User)
			handlers.RespondUnprocessable(w, msgInvalidRange)

		case errors.Is(err, bookings.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user=%s, date=%s", req.User, req.BookingDate)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, bookings.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: user=%s, date=%s", req.User, req.BookingDate)
			handlers.RespondUnprocessable(w, msgSlotInPast)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", req.User, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: id=%s, user=%s", response.ID, response.User)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
