package domain

import "github.com/shopspring/decimal"

// Price расчет стоимости бронирования диапазона слотов
type Price struct {
	Hours    int
	BaseCost decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CalculatePrice считает стоимость диапазона [fromSlot, toSlot].
// Скидка растет только на полных кратных DiscountEveryHours часах.
func CalculatePrice(fromSlot, toSlot int) Price {
	hours := toSlot - fromSlot + 1
	base := hourlyRate.Mul(decimal.NewFromInt(int64(hours)))
	discount := discountPerStep.Mul(decimal.NewFromInt(int64(hours / DiscountEveryHours)))

	return Price{
		Hours:    hours,
		BaseCost: base,
		Discount: discount,
		Total:    base.Sub(discount),
	}
}
