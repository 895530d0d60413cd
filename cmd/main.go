package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"femcare/database"
	"femcare/internal/controllers"
	"femcare/internal/repository"
	"femcare/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Println("No .env file found, using environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	periodRepo := repository.NewPeriodRepository(database.DB)
	assignmentRepo := repository.NewAssignmentRepository(database.DB)
	dashboardRepo := repository.NewDashboardRepository(database.DB)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, periodRepo, assignmentRepo)
	periodController := controllers.NewPeriodController(periodRepo, userRepo)
	notificationController := controllers.NewNotificationController(userRepo, periodRepo)
	assignmentController := controllers.NewAssignmentController(assignmentRepo)
	dashboardController := controllers.NewDashboardController(dashboardRepo, assignmentRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FemCare API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterPeriodRoutes(router, periodController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterAssignmentRoutes(router, assignmentController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
