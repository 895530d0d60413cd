package routes

import (
	"femcare/internal/controllers"
	"femcare/internal/middleware"
	"femcare/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		dashboardRoutes.GET("/summary", dashboardController.Summary)
		dashboardRoutes.GET("/pie-chart", dashboardController.PieChart)
		dashboardRoutes.GET("/graph", dashboardController.MonthlyHistogram)
		dashboardRoutes.GET("/assignment-status/:feminine_id", dashboardController.AssignmentStatus)
	}
}
