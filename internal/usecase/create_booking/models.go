package create_booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	User     string      // Имя пользователя
	Date     domain.Date // Дата бронирования
	Station  int         // Индекс станции [0, 20)
	FromSlot int         // Первый слот диапазона [0, 10)
	ToSlot   int         // Последний слот диапазона включительно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            uuid.UUID
	User          string
	Station       int
	ResourceID    string
	FromSlot      int
	ToSlot        int
	TimeSlotLabel string
	BookingDate   domain.Date
	CreatedAt     time.Time

	Hours      int
	BaseCost   decimal.Decimal
	Discount   decimal.Decimal
	AmountPaid decimal.Decimal

	ReceiptRef   string // Куда сохранена квитанция
	ReceiptError error  // Ошибка сохранения квитанции (бронирование при этом остается)
}
