package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		to       int
		hours    int
		base     string
		discount string
		total    string
	}{
		{name: "one hour", from: 0, to: 0, hours: 1, base: "20", discount: "0", total: "20"},
		{name: "two hours", from: 0, to: 1, hours: 2, base: "40", discount: "0", total: "40"},
		{name: "three hours", from: 2, to: 4, hours: 3, base: "60", discount: "10", total: "50"},
		{name: "five hours", from: 0, to: 4, hours: 5, base: "100", discount: "10", total: "90"},
		{name: "six hours", from: 0, to: 5, hours: 6, base: "120", discount: "20", total: "100"},
		{name: "whole day", from: 0, to: 9, hours: 10, base: "200", discount: "30", total: "170"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := CalculatePrice(tt.from, tt.to)

			assert.Equal(t, tt.hours, price.Hours)
			assert.Equal(t, tt.base, price.BaseCost.String())
			assert.Equal(t, tt.discount, price.Discount.String())
			assert.Equal(t, tt.total, price.Total.String())
		})
	}
}
