package routes

import (
	"femcare/internal/controllers"
	"femcare/internal/middleware"
	"femcare/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	adminRoutes := router.Group("/notifications")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/signups", notificationController.GetSignupNotifications)
	}

	sharedRoutes := router.Group("/notifications")
	sharedRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleHealthWorker))
	{
		sharedRoutes.GET("/periods", notificationController.GetPeriodNotifications)
		sharedRoutes.POST("/periods/:id/seen", notificationController.MarkPeriodSeen)
	}
}
