package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction запись журнала о завершенном бронировании.
// Неизменяема после создания.
type Transaction struct {
	ID            uuid.UUID
	User          string
	Station       int
	ResourceID    string // отображаемое имя станции, например "PC-3"
	FromSlot      int
	ToSlot        int
	TimeSlotLabel string
	AmountPaid    decimal.Decimal
	CreatedAt     time.Time
	BookingDate   Date
}

// Timestamp возвращает время создания в формате YYYY-MM-DD HH:MM:SS
func (t *Transaction) Timestamp() string {
	return t.CreatedAt.Format(TimestampFormat)
}

// ReceiptText форматирует текст квитанции
func (t *Transaction) ReceiptText() string {
	var b strings.Builder
	b.WriteString("----- RECEIPT -----\n")
	fmt.Fprintf(&b, "Customer: %s\n", t.User)
	fmt.Fprintf(&b, "Computer: %s\n", t.ResourceID)
	fmt.Fprintf(&b, "Booked Date: %s\n", t.BookingDate)
	fmt.Fprintf(&b, "Time Slot: %s\n", t.TimeSlotLabel)
	fmt.Fprintf(&b, "Amount Paid: %s%s\n", CurrencySymbol, t.AmountPaid.StringFixed(2))
	fmt.Fprintf(&b, "Date Booked: %s\n", t.Timestamp())
	b.WriteString("-------------------")
	return b.String()
}

// ReportLine форматирует строку дневного отчета
func (t *Transaction) ReportLine() string {
	return fmt.Sprintf("User: %s, Computer: %s, Slot: %s, Paid: %s%s, Time: %s",
		t.User, t.ResourceID, t.TimeSlotLabel, CurrencySymbol, t.AmountPaid.StringFixed(2), t.Timestamp())
}
