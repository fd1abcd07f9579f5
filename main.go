package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backoffice/config"
	"backoffice/controller"
	"backoffice/middleware"
	"backoffice/routes"
)

func main() {
	config.Connection()
	config.InitRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.POST("/login", middleware.RateLimiter(), controller.Login)
	router.POST("/register", middleware.RateLimiter(), controller.Register)
	router.POST("/forgot-password", middleware.RateLimiter(), controller.ForgotPassword)
	router.POST("/reset-password", middleware.RateLimiter(), controller.ResetPassword)

	authorized := router.Group("/")
	authorized.Use(middleware.RequireAuth)
	{
		routes.UserRoutes(authorized)
		routes.ProductRoutes(authorized)
		routes.OrderRoutes(authorized)
	}

	if err := router.Run(":8080"); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
