package routes

import (
	"femcare/internal/controllers"
	"femcare/internal/middleware"
	"femcare/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/", userController.Register)
		userRoutesPublic.POST("/login", userController.LoginUser)
	}

	adminRoutes := router.Group("/users")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.POST("/:id/verify", userController.VerifyAccount)
		adminRoutes.POST("/:id/reset-password", userController.ResetPassword)
		adminRoutes.DELETE("/:id", userController.DeleteUser)
		adminRoutes.GET("/feminine", userController.FeminineRoster)
		adminRoutes.GET("/health-workers", userController.HealthWorkerRoster)
		adminRoutes.GET("/accounts", userController.AccountData)
	}
}
