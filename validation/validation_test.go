package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrder() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: "12 Analytical Lane",
		ShippingCity:    "London",
		ShippingState:   "LDN",
		ShippingZip:     "EC1",
		ShippingCountry: "UK",
		Items: []OrderItemRequest{
			{ProductID: 1, Quantity: 2},
		},
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(validCreateOrder()))
}

func TestCreateOrderRequest_RequiresItems(t *testing.T) {
	v := New()
	req := validCreateOrder()
	req.Items = nil
	assert.Error(t, v.Struct(req))
}

func TestCreateOrderRequest_RejectsZeroQuantity(t *testing.T) {
	v := New()
	req := validCreateOrder()
	req.Items[0].Quantity = 0
	assert.Error(t, v.Struct(req))
}

func TestCreateOrderRequest_RejectsDuplicateProducts(t *testing.T) {
	v := New()
	req := validCreateOrder()
	req.Items = append(req.Items, OrderItemRequest{ProductID: 1, Quantity: 3})
	err := v.Struct(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique_products")
}

func TestCreateOrderRequest_RejectsBadEmail(t *testing.T) {
	v := New()
	req := validCreateOrder()
	req.CustomerEmail = "not-an-email"
	assert.Error(t, v.Struct(req))
}

func TestUpdateStatusRequest_RestrictsStatuses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(UpdateStatusRequest{Status: "processing"}))
	assert.Error(t, v.Struct(UpdateStatusRequest{Status: "refunded"}))
}

func TestCreateProductRequest_RejectsNegativePrice(t *testing.T) {
	v := New()
	req := CreateProductRequest{Name: "Widget", SKU: "W-1", Price: -1}
	assert.Error(t, v.Struct(req))
}
