package orders

import "backoffice/models"

const (
	// TaxRate is the flat tax applied to the subtotal.
	TaxRate = 0.10
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 100.0
	// FlatShippingCost applies whenever the threshold is not exceeded.
	FlatShippingCost = 10.0
)

// Totals holds the derived amounts for an order. Total is always
// Subtotal + ShippingCost + Tax.
type Totals struct {
	Subtotal     float64
	ShippingCost float64
	Tax          float64
	Total        float64
}

// ComputeTotals derives an order's totals from its current items. This is
// the single place the subtotal/shipping/tax formula lives; every mutating
// operation ends by applying its result.
func ComputeTotals(items []models.OrderItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	shipping := FlatShippingCost
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}
