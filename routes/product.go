package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/controller"
)

// ProductRoutes registers the product resource under an authorized group.
func ProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", controller.GetProducts)
		products.GET("/:id", controller.GetProductByID)
		products.POST("", controller.CreateProduct)
		products.PUT("/:id", controller.UpdateProduct)
		products.DELETE("/:id", controller.DeleteProduct)
	}
}
