package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/controller"
)

// OrderRoutes registers the order resource and its items sub-resource.
func OrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", controller.GetOrders)
		orders.POST("", controller.CreateOrder)
		orders.GET("/:id", controller.GetOrder)
		orders.POST("/:id/status", controller.UpdateOrderStatus)
		orders.DELETE("/:id", controller.DeleteOrder)

		orders.POST("/:id/items", controller.AddOrderItem)
		orders.PUT("/:id/items/:item", controller.UpdateOrderItem)
		orders.DELETE("/:id/items/:item", controller.RemoveOrderItem)
	}
}
