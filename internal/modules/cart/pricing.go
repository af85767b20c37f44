package cart

import "github.com/shopspring/decimal"

var (
	taxRate      = decimal.RequireFromString("0.08")
	flatShipping = decimal.RequireFromString("5.00")
)

// Price computes subtotal, 8% tax and the flat shipping charge for items. Tax is rounded to
// cents; shipping is charged only for a non-empty set.
func Price(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = flatShipping
	}

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    subtotal.Add(tax).Add(shipping).InexactFloat64(),
	}
}
