package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backoffice/orders"
	"backoffice/validation"
)

var validate = validation.New()

// pathID parses a numeric path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondOrderError maps core order failures onto HTTP responses. Anything
// unrecognized is a server error.
func respondOrderError(c *gin.Context, err error) {
	var (
		productNotFound   *orders.ProductNotFoundError
		insufficientStock *orders.InsufficientStockError
		invalidTransition *orders.InvalidTransitionError
		itemNotInOrder    *orders.ItemNotInOrderError
	)

	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.As(err, &productNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Product not found",
			"product_id": productNotFound.ProductID,
		})
	case errors.As(err, &insufficientStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      insufficientStock.Error(),
			"product_id": insufficientStock.ProductID,
			"available":  insufficientStock.Available,
		})
	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalidTransition.Error()})
	case errors.As(err, &itemNotInOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": itemNotInOrder.Error()})
	default:
		logrus.WithError(err).Error("order operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
