package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/models"
)

func items(prices ...float64) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(prices))
	for _, p := range prices {
		out = append(out, models.OrderItem{Quantity: 1, UnitPrice: p, TotalPrice: p})
	}
	return out
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.InDelta(t, 0.0, totals.Subtotal, delta)
	assert.InDelta(t, FlatShippingCost, totals.ShippingCost, delta)
	assert.InDelta(t, 0.0, totals.Tax, delta)
	assert.InDelta(t, FlatShippingCost, totals.Total, delta)
}

func TestComputeTotals_BelowThreshold(t *testing.T) {
	totals := ComputeTotals(items(40))

	assert.InDelta(t, 40.0, totals.Subtotal, delta)
	assert.InDelta(t, 10.0, totals.ShippingCost, delta)
	assert.InDelta(t, 4.0, totals.Tax, delta)
	assert.InDelta(t, 54.0, totals.Total, delta)
}

func TestComputeTotals_ExactlyAtThresholdStillShips(t *testing.T) {
	// the rule is strictly greater than the threshold
	totals := ComputeTotals(items(100))

	assert.InDelta(t, 10.0, totals.ShippingCost, delta)
}

func TestComputeTotals_AboveThresholdShipsFree(t *testing.T) {
	totals := ComputeTotals(items(100.01))

	assert.InDelta(t, 0.0, totals.ShippingCost, delta)
}

func TestComputeTotals_SumsAllItems(t *testing.T) {
	totals := ComputeTotals(items(10, 20, 30))

	assert.InDelta(t, 60.0, totals.Subtotal, delta)
	assert.InDelta(t, totals.Subtotal+totals.ShippingCost+totals.Tax, totals.Total, delta)
}
