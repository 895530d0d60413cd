package routes

import (
	"femcare/internal/controllers"
	"femcare/internal/middleware"
	"femcare/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterPeriodRoutes(router *gin.Engine, periodController *controllers.PeriodController) {
	feminineRoutes := router.Group("/periods")
	feminineRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleFeminine))
	{
		feminineRoutes.POST("/", periodController.LogPeriod)
	}

	calendarRoutes := router.Group("/periods")
	calendarRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin, models.RoleHealthWorker))
	{
		calendarRoutes.GET("/calendar", periodController.Calendar)
	}
}
