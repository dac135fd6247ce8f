package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/mapleleafu/wardrush/wardrush-backend/config"
	"github.com/mapleleafu/wardrush/wardrush-backend/game"
	"github.com/mapleleafu/wardrush/wardrush-backend/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment values")
	}

	cfg := config.LoadConfig()
	registry := game.NewRegistry(cfg.Game)
	r := handlers.NewRouter(registry)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
