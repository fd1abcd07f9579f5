package controller

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backoffice/config"
	"backoffice/middleware"
	"backoffice/models"
	"backoffice/orders"
	"backoffice/utils"
	"backoffice/validation"
)

// GetOrders godoc
// @Summary List orders
// @Description Own orders for regular users, all orders for admins. Optional status filter.
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	filter := orders.ListFilter{
		Status:  models.OrderStatus(c.Query("status")),
		Page:    page,
		PerPage: perPage,
	}

	svc := orders.NewService(config.DB)
	list, total, err := svc.ListOrders(c.Request.Context(), actor, filter)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"meta": gin.H{
			"total":     total,
			"page":      page,
			"per_page":  perPage,
			"last_page": int(math.Ceil(float64(total) / float64(max(perPage, 1)))),
		},
	})
}

// CreateOrder godoc
// @Summary Create a new order
// @Description Places a pending order, reserving stock for every line.
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} models.Order
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	input := orders.CreateOrderInput{
		ShippingName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		ShippingCountry: req.ShippingCountry,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orders.LineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	svc := orders.NewService(config.DB)
	order, err := svc.CreateOrder(c.Request.Context(), actor, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if err := utils.SendOrderConfirmationEmail(req.CustomerEmail, order.OrderNumber, order.Total); err != nil {
		logrus.WithError(err).WithField("order", order.OrderNumber).Warn("could not send confirmation email")
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder godoc
// @Summary Get a single order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Router /orders/{id} [get]
func GetOrder(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := orders.NewService(config.DB)
	order, err := svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if !actor.CanView(order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to view this order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Admin only. Forward transitions plus pending->cancelled.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Router /orders/{id}/status [post]
func UpdateOrderStatus(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !actor.CanUpdateStatus() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may update order status"})
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req validation.UpdateStatusRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	svc := orders.NewService(config.DB)
	order, err := svc.UpdateStatus(c.Request.Context(), orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if config.RedisClient != nil {
		event, _ := json.Marshal(gin.H{
			"event":        "order_status_updated",
			"order_id":     order.Id,
			"order_number": order.OrderNumber,
			"status":       order.Status,
		})
		go config.RedisClient.Publish(context.Background(), "order_updates", event)
	}

	if order.UserID != nil {
		var owner models.User
		if err := config.DB.First(&owner, *order.UserID).Error; err == nil {
			if err := utils.SendOrderStatusEmail(owner.Email, order.OrderNumber, string(order.Status)); err != nil {
				logrus.WithError(err).WithField("order", order.OrderNumber).Warn("could not send status email")
			}
		}
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete a pending order
// @Description Restores every reserved unit of stock, then removes the order and its items.
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Router /orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := orders.NewService(config.DB)
	order, err := svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if !actor.CanDelete(order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to delete this order"})
		return
	}

	if err := svc.DeleteOrder(c.Request.Context(), orderID); err != nil {
		respondOrderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
