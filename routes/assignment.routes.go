package routes

import (
	"femcare/internal/controllers"
	"femcare/internal/middleware"
	"femcare/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterAssignmentRoutes(router *gin.Engine, assignmentController *controllers.AssignmentController) {
	assignmentRoutes := router.Group("/assignments")
	assignmentRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		assignmentRoutes.POST("/", assignmentController.AssignFeminine)
		assignmentRoutes.DELETE("/:id", assignmentController.Unassign)
		assignmentRoutes.GET("/options/:health_worker_id", assignmentController.AssignmentOptions)
	}
}
