package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with struct-level rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})
	return v
}

// createOrderStructValidation rejects payloads that list the same product
// twice; merging duplicate lines is an explicit add-item operation, not
// something order creation guesses at.
func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)

	seen := make(map[uint]bool, len(req.Items))
	for _, item := range req.Items {
		if seen[item.ProductID] {
			sl.ReportError(req.Items, "items", "Items", "unique_products", "")
			return
		}
		seen[item.ProductID] = true
	}
}
