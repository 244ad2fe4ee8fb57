package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		want string
	}{
		{"zero renders empty", 0, ""},
		{"small quantity", 42.5, "42.50"},
		{"thousands separators", 44092.45, "44,092.45"},
		{"millions", 1234567.8, "1,234,567.80"},
		{"negative", -1250.5, "-1,250.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatQuantity(tt.qty))
		})
	}
}

func TestItemNumber(t *testing.T) {
	assert.Equal(t, "7", itemNumber(0, LineItem{No: 7}))
	assert.Equal(t, "1", itemNumber(0, LineItem{}))
	assert.Equal(t, "3", itemNumber(2, LineItem{}))
}

func TestFormatUnitPrice(t *testing.T) {
	assert.Equal(t, "", formatUnitPrice(0))
	assert.Equal(t, "1.2500", formatUnitPrice(1.25))
	assert.Equal(t, "0.0475", formatUnitPrice(0.0475))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "USD 55,115.56", formatUSD(decimal.RequireFromString("55115.5625")))
	assert.Equal(t, "USD 0.00", formatUSD(decimal.Zero))
}

func TestGrandTotalMatchesItemSum(t *testing.T) {
	data := &InvoiceData{
		Items: []LineItem{
			{QuantityLB: 44092.45, PricePerLB: 1.25},
			{QuantityLB: 1000, PricePerLB: 0.0475},
		},
	}
	want := decimal.RequireFromString("44092.45").Mul(decimal.RequireFromString("1.25")).
		Add(decimal.RequireFromString("1000").Mul(decimal.RequireFromString("0.0475")))
	assert.True(t, want.Equal(grandTotal(data)))
}
