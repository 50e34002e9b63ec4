package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/controllers"
	"github.com/brickworks/brickworks-api/middleware"
	"github.com/brickworks/brickworks-api/models"
)

func main() {
	log.Println("Starting Brickworks API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Brick{},
		&models.Transport{},
		&models.Laborer{},
		&models.Order{},
		&models.Invoice{},
		&models.Expense{},
		&models.KilnCapacity{},
		&models.RoundCompletion{},
		&models.Setting{},
		&models.Sequence{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger())

	registerRoutes(router)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// registerRoutes wires every API route onto the router
func registerRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		v1.GET("/bricks", controllers.GetBricks)
		v1.POST("/bricks", controllers.CreateBrick)
		v1.PUT("/bricks/:id", controllers.UpdateBrick)
		v1.DELETE("/bricks/:id", controllers.DeleteBrick)

		v1.GET("/transport", controllers.GetTransport)
		v1.GET("/transport/available", controllers.GetAvailableTransport)
		v1.POST("/transport", controllers.CreateTransport)
		v1.PUT("/transport/:id", controllers.UpdateTransport)
		v1.DELETE("/transport/:id", controllers.DeleteTransport)

		v1.GET("/laborers", controllers.GetLaborers)
		v1.GET("/laborers/active", controllers.GetActiveLaborers)
		v1.POST("/laborers", controllers.CreateLaborer)
		v1.PUT("/laborers/:id", controllers.UpdateLaborer)
		v1.DELETE("/laborers/:id", controllers.DeleteLaborer)

		v1.GET("/orders", controllers.GetOrders)
		v1.GET("/orders/status/:status", controllers.GetOrdersByStatus)
		v1.POST("/orders", controllers.CreateOrder)
		v1.PUT("/orders/:id", controllers.UpdateOrder)
		v1.DELETE("/orders/:id", controllers.DeleteOrder)
		v1.POST("/orders/:id/invoice", controllers.GenerateOrderInvoice)

		v1.GET("/invoices", controllers.GetInvoices)
		v1.GET("/invoices/order/:orderId", controllers.GetInvoiceByOrder)
		v1.POST("/invoices", controllers.CreateInvoice)
		v1.PUT("/invoices/:id", controllers.UpdateInvoice)
		v1.DELETE("/invoices/:id", controllers.DeleteInvoice)

		v1.GET("/expenses", controllers.GetExpenses)
		v1.POST("/expenses", controllers.CreateExpense)
		v1.PUT("/expenses/:id", controllers.UpdateExpense)
		v1.DELETE("/expenses/:id", controllers.DeleteExpense)

		v1.GET("/kiln-capacity", controllers.GetKilns)
		v1.POST("/kiln-capacity", controllers.CreateKiln)
		v1.PUT("/kiln-capacity/:id", controllers.UpdateKiln)
		v1.DELETE("/kiln-capacity/:id", controllers.DeleteKiln)

		v1.GET("/round-completions", controllers.GetRounds)
		v1.POST("/round-completions", controllers.CreateRound)
		v1.PUT("/round-completions/:id", controllers.UpdateRound)
		v1.DELETE("/round-completions/:id", controllers.DeleteRound)

		v1.GET("/settings", controllers.GetSettings)
		v1.PUT("/settings", controllers.UpdateSettings)

		v1.GET("/statistics", controllers.GetStatistics)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Brickworks API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
