package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"campusfix-be/config"
	"campusfix-be/models"
	"campusfix-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	demo := config.DemoMode()
	rateLimited := false

	if !demo {
		if err := models.EnsureIssueIndexes(config.GetCollection("issues")); err != nil {
			log.Printf("Failed to ensure issue indexes: %v", err)
		}
		config.ConnectStorage()
		rateLimited = config.ConnectRedis()
	}

	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	routes.IssueRoutes(r, rateLimited)
	routes.AuthRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Client bootstrap: the map key and whether the live backend is up.
	r.GET("/api/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mapsApiKey": os.Getenv("MAPS_API_KEY"),
			"demo":       demo,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
