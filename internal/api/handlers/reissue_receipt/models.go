package reissue_receipt

import "github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"

// ReceiptResponse HTTP response model
type ReceiptResponse struct {
	Receipt     string                      `json:"receipt"`
	Transaction *models.TransactionResponse `json:"transaction"`
}
