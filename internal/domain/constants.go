package domain

import "github.com/shopspring/decimal"

// Параметры пула станций и сетки слотов
const (
	NumStations   = 20
	NumSlots      = 10
	FirstSlotHour = 13 // слот 0 начинается в 13:00
)

// Параметры тарифа
const (
	HourlyRate         = 20
	DiscountEveryHours = 3  // скидка начисляется за каждые полные 3 часа
	DiscountPerStep    = 10 // размер скидки за каждый полный шаг
	CurrencySymbol     = "₱"
	StationLabelPrefix = "PC-"
	SlotAvailableLabel = "Available"
	SlotBookedByPrefix = "Booked by "
)

// Time format constants
const (
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	TimestampFormat = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS
)

var (
	hourlyRate      = decimal.NewFromInt(HourlyRate)
	discountPerStep = decimal.NewFromInt(DiscountPerStep)
)
