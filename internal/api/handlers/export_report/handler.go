package export_report

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

const (
	msgInvalidDate = "invalid date format, expected yyyy-MM-dd"
)

type Handler struct {
	service TransactionService
	logger  Logger
}

func NewHandler(service TransactionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reports/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("POST /reports/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	path, count, err := h.service.ExportDayReport(r.Context(), date)
	if err != nil {
		h.logger.Error("POST /reports/{date} - Failed to export report: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reports/{date} - Report exported: date=%s, path=%s", date, path)
	handlers.RespondJSON(w, http.StatusCreated, &ExportReportResponse{
		Date:         date.String(),
		Path:         path,
		Transactions: count,
	})
}
