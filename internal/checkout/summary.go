package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/domain"
)

var (
	taxRate      = decimal.RequireFromString("0.08")
	shippingFlat = decimal.RequireFromString("5.99")
)

// Summary is the order total breakdown, rounded to cents.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Summarize prices the given lines. Shipping is charged once when there is
// at least one line.
func Summarize(lines []domain.CartLine) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxRate).Round(2)
	shipping := decimal.Zero
	if len(lines) > 0 {
		shipping = shippingFlat
	}
	total := subtotal.Add(tax).Add(shipping)

	return Summary{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
