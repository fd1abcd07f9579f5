package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/models"
)

func orderPayload(productID uint, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Ada Lovelace",
		"customer_email":   "ada@example.com",
		"shipping_address": "12 Analytical Lane",
		"shipping_city":    "London",
		"shipping_state":   "LDN",
		"shipping_zip":     "EC1",
		"shipping_country": "UK",
		"items": []map[string]interface{}{
			{"product_id": productID, "quantity": quantity},
		},
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ada@example.com", false)
	product := createTestProduct(t, db, "WIDGET", 20, 10)

	router := actingAs(user)
	router.POST("/orders", CreateOrder)

	w := doJSON(t, router, http.MethodPost, "/orders", orderPayload(product.Id, 2))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.InDelta(t, 54.0, body["total"].(float64), 1e-9)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.Id).Error)
	assert.Equal(t, 8, reloaded.StockQuantity)
}

func TestCreateOrderEndpoint_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ada@example.com", false)
	product := createTestProduct(t, db, "SCARCE", 20, 3)

	router := actingAs(user)
	router.POST("/orders", CreateOrder)

	w := doJSON(t, router, http.MethodPost, "/orders", orderPayload(product.Id, 5))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 3, body["available"])

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderEndpoint_ValidationFailure(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ada@example.com", false)

	router := actingAs(user)
	router.POST("/orders", CreateOrder)

	w := doJSON(t, router, http.MethodPost, "/orders", map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderEndpoint_ForbiddenForStrangers(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", false)
	stranger := createTestUser(t, db, "stranger@example.com", false)
	product := createTestProduct(t, db, "WIDGET", 20, 10)

	ownerRouter := actingAs(owner)
	ownerRouter.POST("/orders", CreateOrder)
	w := doJSON(t, ownerRouter, http.MethodPost, "/orders", orderPayload(product.Id, 1))
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(float64)

	strangerRouter := actingAs(stranger)
	strangerRouter.GET("/orders/:id", GetOrder)
	w = doJSON(t, strangerRouter, http.MethodGet, fmt.Sprintf("/orders/%.0f", orderID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminRouter := actingAs(createTestUser(t, db, "admin@example.com", true))
	adminRouter.GET("/orders/:id", GetOrder)
	w = doJSON(t, adminRouter, http.MethodGet, fmt.Sprintf("/orders/%.0f", orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatusEndpoint_AdminOnly(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", false)
	admin := createTestUser(t, db, "admin@example.com", true)
	product := createTestProduct(t, db, "WIDGET", 20, 10)

	ownerRouter := actingAs(owner)
	ownerRouter.POST("/orders", CreateOrder)
	ownerRouter.POST("/orders/:id/status", UpdateOrderStatus)

	w := doJSON(t, ownerRouter, http.MethodPost, "/orders", orderPayload(product.Id, 1))
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(float64)
	path := fmt.Sprintf("/orders/%.0f/status", orderID)

	w = doJSON(t, ownerRouter, http.MethodPost, path, map[string]interface{}{"status": "processing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminRouter := actingAs(admin)
	adminRouter.POST("/orders/:id/status", UpdateOrderStatus)
	w = doJSON(t, adminRouter, http.MethodPost, path, map[string]interface{}{"status": "processing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "processing", decodeBody(t, w)["status"])

	// backwards transition is rejected by the lifecycle
	w = doJSON(t, adminRouter, http.MethodPost, path, map[string]interface{}{"status": "pending"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestOrderItemEndpoints(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", false)
	product := createTestProduct(t, db, "WIDGET", 20, 10)

	router := actingAs(owner)
	router.POST("/orders", CreateOrder)
	router.POST("/orders/:id/items", AddOrderItem)
	router.PUT("/orders/:id/items/:item", UpdateOrderItem)
	router.DELETE("/orders/:id/items/:item", RemoveOrderItem)

	w := doJSON(t, router, http.MethodPost, "/orders", orderPayload(product.Id, 2))
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/orders/%.0f/items", orderID), map[string]interface{}{
		"product_id": product.Id,
		"quantity":   3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.OrderItem
	require.NoError(t, db.Where("order_id = ?", uint(orderID)).First(&item).Error)
	assert.Equal(t, 5, item.Quantity)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/orders/%.0f/items/%d", orderID, item.Id), map[string]interface{}{
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.Id).Error)
	assert.Equal(t, 9, reloaded.StockQuantity)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/orders/%.0f/items/%d", orderID, item.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&reloaded, product.Id).Error)
	assert.Equal(t, 10, reloaded.StockQuantity)
}
