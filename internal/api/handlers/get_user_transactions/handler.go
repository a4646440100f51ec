package get_user_transactions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/service/transactions"
)

const (
	msgInvalidUsername = "invalid username"
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

// Handle GET /api/v1/users/{username}/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	result, err := h.service.GetUserTransactions(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrInvalidInput):
			h.logger.Warn("GET /users/{username}/transactions - Invalid username: %q", username)
			handlers.RespondBadRequest(w, msgInvalidUsername)

		default:
			h.logger.Error("GET /users/{username}/transactions - Failed to get transactions: user=%s, error=%v",
				username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{username}/transactions - Fetched %d transactions: user=%s",
		len(result.Transactions), username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
