package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/config"
	"backoffice/middleware"
	"backoffice/orders"
	"backoffice/validation"
)

// authorizeItemMutation loads the order and checks the actor may touch its
// items. The pending-only rule is enforced by the orders service itself.
func authorizeItemMutation(c *gin.Context) (*orders.Service, uint, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, 0, false
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return nil, 0, false
	}

	svc := orders.NewService(config.DB)
	order, err := svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondOrderError(c, err)
		return nil, 0, false
	}
	if !actor.CanModifyItems(order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to modify this order"})
		return nil, 0, false
	}
	return svc, orderID, true
}

// AddOrderItem godoc
// @Summary Add an item to a pending order
// @Description Merges with an existing line for the same product.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Router /orders/{id}/items [post]
func AddOrderItem(c *gin.Context) {
	svc, orderID, ok := authorizeItemMutation(c)
	if !ok {
		return
	}

	var req validation.AddItemRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	order, err := svc.AddItem(c.Request.Context(), orderID, req.ProductID, req.Quantity)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to order successfully",
		"order":   order,
	})
}

// UpdateOrderItem godoc
// @Summary Change the quantity of an order line
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param item path int true "Item ID"
// @Success 200 {object} models.Order
// @Router /orders/{id}/items/{item} [put]
func UpdateOrderItem(c *gin.Context) {
	svc, orderID, ok := authorizeItemMutation(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item")
	if !ok {
		return
	}

	var req validation.UpdateItemRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	order, err := svc.UpdateItemQuantity(c.Request.Context(), orderID, itemID, req.Quantity)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"order":   order,
	})
}

// RemoveOrderItem godoc
// @Summary Remove a line from a pending order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param item path int true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Router /orders/{id}/items/{item} [delete]
func RemoveOrderItem(c *gin.Context) {
	svc, orderID, ok := authorizeItemMutation(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item")
	if !ok {
		return
	}

	order, err := svc.RemoveItem(c.Request.Context(), orderID, itemID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from order successfully",
		"order":   order,
	})
}
