package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/petshopsuite/petshop-api/internal/config"
	"github.com/petshopsuite/petshop-api/internal/db"
	"github.com/petshopsuite/petshop-api/internal/middleware"
	"github.com/petshopsuite/petshop-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
