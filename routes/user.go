package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/controller"
)

// UserRoutes registers the authenticated user endpoints.
func UserRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", controller.Me)
	rg.GET("/users", controller.GetUsers)
}
