package pdf

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// itemNumber renders the row number for the item at index i. An unset
// number defaults to the 1-based position in the item list.
func itemNumber(i int, item LineItem) string {
	if item.No != 0 {
		return strconv.Itoa(item.No)
	}
	return strconv.Itoa(i + 1)
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// formatQuantity renders a quantity with two decimals and thousands
// separators. Zero renders as an empty string.
func formatQuantity(qty float64) string {
	d := decimal.NewFromFloat(qty)
	if d.IsZero() {
		return ""
	}
	return groupThousands(d.StringFixed(2))
}

// formatUnitPrice renders a per-unit price with four decimals. Zero
// renders as an empty string.
func formatUnitPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(4)
}

// formatAmount renders a monetary amount with two decimals and
// thousands separators. Zero renders as an empty string.
func formatAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return groupThousands(amount.StringFixed(2))
}

// lineAmount is the exact row amount, quantity times unit price.
func lineAmount(item LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.QuantityLB).Mul(decimal.NewFromFloat(item.PricePerLB))
}

// grandTotal sums the exact row amounts over all items.
func grandTotal(data *InvoiceData) decimal.Decimal {
	total := decimal.Zero
	for _, item := range data.Items {
		total = total.Add(lineAmount(item))
	}
	return total
}

// formatUSD renders the grand total as "USD 1,234.56". A zero total
// still prints the amount so the total row is never blank.
func formatUSD(amount decimal.Decimal) string {
	return "USD " + groupThousands(amount.StringFixed(2))
}
