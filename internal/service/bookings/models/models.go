package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// ReserveRequest запрос на бронирование диапазона слотов станции
type ReserveRequest struct {
	Date     domain.Date
	Station  int
	FromSlot int
	ToSlot   int
	User     string
}

// CancelRequest запрос на освобождение одного слота
type CancelRequest struct {
	Date    domain.Date
	Station int
	Slot    int
}

// TransactionResponse транзакция в виде для ответа API
type TransactionResponse struct {
	ID            string `json:"id"`
	User          string `json:"user"`
	Station       int    `json:"station"`
	ResourceID    string `json:"resourceId"`
	FromSlot      int    `json:"fromSlot"`
	ToSlot        int    `json:"toSlot"`
	TimeSlotLabel string `json:"timeSlot"`
	AmountPaid    string `json:"amountPaid"`
	BookingDate   string `json:"bookingDate"`
	CreatedAt     string `json:"createdAt"`
}

// TransactionListResponse список транзакций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        string                `json:"total"`
}

// SlotCell состояние одной ячейки сетки
type SlotCell struct {
	Slot     int    `json:"slot"`
	Label    string `json:"label"`
	Hour     int    `json:"hour"`
	Booked   bool   `json:"booked"`
	BookedBy string `json:"bookedBy,omitempty"`
	Status   string `json:"status"`
}

// StationRow строка сетки доступности для одной станции
type StationRow struct {
	Station int        `json:"station"`
	Name    string     `json:"name"`
	Slots   []SlotCell `json:"slots"`
}

// AvailabilityResponse сетка доступности на дату
type AvailabilityResponse struct {
	Date     string       `json:"date"`
	Stations []StationRow `json:"stations"`
}

// FromDomainTransaction конвертирует доменную транзакцию в ответ API
func FromDomainTransaction(tx *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            tx.ID.String(),
		User:          tx.User,
		Station:       tx.Station,
		ResourceID:    tx.ResourceID,
		FromSlot:      tx.FromSlot,
		ToSlot:        tx.ToSlot,
		TimeSlotLabel: tx.TimeSlotLabel,
		AmountPaid:    tx.AmountPaid.StringFixed(2),
		BookingDate:   tx.BookingDate.String(),
		CreatedAt:     tx.Timestamp(),
	}
}

// FromDomainTransactionList конвертирует список транзакций и считает сумму
func FromDomainTransactionList(txs []domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txs)),
	}

	total := decimal.Zero
	for i := range txs {
		resp.Transactions = append(resp.Transactions, *FromDomainTransaction(&txs[i]))
		total = total.Add(txs[i].AmountPaid)
	}
	resp.Total = total.StringFixed(2)

	return resp
}

// FromDomainGrid конвертирует сетку слотов в ответ API
func FromDomainGrid(date domain.Date, grid domain.Grid) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Date:     date.String(),
		Stations: make([]StationRow, 0, domain.NumStations),
	}

	for station := 0; station < domain.NumStations; station++ {
		row := StationRow{
			Station: station,
			Name:    domain.StationLabel(station),
			Slots:   make([]SlotCell, 0, domain.NumSlots),
		}
		for slot := 0; slot < domain.NumSlots; slot++ {
			state := grid[station][slot]
			row.Slots = append(row.Slots, SlotCell{
				Slot:     slot,
				Label:    domain.SlotLabel(slot),
				Hour:     domain.SlotStartHour(slot),
				Booked:   state.Booked,
				BookedBy: state.BookedBy,
				Status:   state.Label(),
			})
		}
		resp.Stations = append(resp.Stations, row)
	}

	return resp
}
