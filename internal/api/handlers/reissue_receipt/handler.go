package reissue_receipt

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StationBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StationBooking/internal/service/transactions"
)

const (
	msgNoTransactions = "no transactions yet"
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

// Handle POST /api/v1/receipts/last
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tx, ref, err := h.service.ReissueLastReceipt(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrNoTransactions):
			h.logger.Warn("POST /receipts/last - No transactions yet")
			handlers.RespondNotFound(w, msgNoTransactions)

		default:
			h.logger.Error("POST /receipts/last - Failed to emit receipt: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /receipts/last - Receipt emitted: id=%s, receipt=%s", tx.ID, ref)
	handlers.RespondJSON(w, http.StatusCreated, &ReceiptResponse{
		Receipt:     ref,
		Transaction: tx,
	})
}
