package create_booking

import (
	"github.com/m04kA/SMC-StationBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StationBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	User        string `json:"user" validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	Station     *int   `json:"station" validate:"required,min=0,max=19"`
	FromSlot    *int   `json:"fromSlot" validate:"required,min=0,max=9"`
	ToSlot      *int   `json:"toSlot" validate:"required,min=0,max=9"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string `json:"id"`
	User         string `json:"user"`
	Station      int    `json:"station"`
	Computer     string `json:"computer"`
	FromSlot     int    `json:"fromSlot"`
	ToSlot       int    `json:"toSlot"`
	TimeSlot     string `json:"timeSlot"`
	BookingDate  string `json:"bookingDate"`
	Hours        int    `json:"hours"`
	BaseCost     string `json:"baseCost"`
	Discount     string `json:"discount"`
	AmountPaid   string `json:"amountPaid"`
	CreatedAt    string `json:"createdAt"`
	Receipt      string `json:"receipt,omitempty"`
	ReceiptError string `json:"receiptError,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		User:     r.User,
		Date:     date,
		Station:  *r.Station,
		FromSlot: *r.FromSlot,
		ToSlot:   *r.ToSlot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:          resp.ID.String(),
		User:        resp.User,
		Station:     resp.Station,
		Computer:    resp.ResourceID,
		FromSlot:    resp.FromSlot,
		ToSlot:      resp.ToSlot,
		TimeSlot:    resp.TimeSlotLabel,
		BookingDate: resp.BookingDate.String(),
		Hours:       resp.Hours,
		BaseCost:    resp.BaseCost.StringFixed(2),
		Discount:    resp.Discount.StringFixed(2),
		AmountPaid:  resp.AmountPaid.StringFixed(2),
		CreatedAt:   resp.CreatedAt.Format(domain.TimestampFormat),
		Receipt:     resp.ReceiptRef,
	}
	if resp.ReceiptError != nil {
		out.ReceiptError = resp.ReceiptError.Error()
	}
	return out
}
