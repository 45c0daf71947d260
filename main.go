package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tournament-elo-api/config"
	_ "tournament-elo-api/docs" // Swagger docs
	"tournament-elo-api/internal/api"
	"tournament-elo-api/internal/challonge"
)

// @title           Tournament ELO API
// @version         1.0
// @description     ELO rankings built from Challonge tournament brackets

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	client := challonge.NewClient(challonge.ClientConfig{
		APIKey: config.ChallongeAPIKey(),
	})

	module := api.NewModule(config.DB, client)

	r := gin.Default()
	r.Use(cors.Default())

	module.SetupRoutes(r)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	if err := module.StartScheduler(); err != nil {
		log.Printf("Scheduler failed to start: %v", err)
	}
	defer module.StopScheduler()

	port := config.ServerPort()
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}
