package main

import (
	"fmt"
	"log"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/configs"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/middlewares"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedFoodItems(); err != nil {
		log.Fatalf("seed food items failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
