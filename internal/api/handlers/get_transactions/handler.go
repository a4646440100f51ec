package get_transactions

import (
	"net/http"

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

// Handle GET /api/v1/transactions
// Query params: date (optional, yyyy-MM-dd); без даты возвращается весь журнал
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var datePtr *domain.Date
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /transactions - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		datePtr = &date
	}

	result, err := h.service.GetTransactions(r.Context(), datePtr)
	if err != nil {
		h.logger.Error("GET /transactions - Failed to get transactions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /transactions - Fetched %d transactions", len(result.Transactions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
