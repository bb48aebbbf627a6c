package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/mini-septa/poller/internal/api"
	"github.com/mini-septa/poller/internal/config"
	"github.com/mini-septa/poller/internal/db"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	config.LoadDotEnv(".env", ".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Connecting to SQLite database: %s", cfg.DatabasePath)
	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize SQLite database: %v", err)
	}
	defer database.Close()

	// The API may start before the poller has created the tables.
	if err := database.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	r := api.NewRouter(database, cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	log.Printf("API server starting on :%s", cfg.Port)
	log.Println("Train endpoints:")
	log.Println("  GET /api/trains[?line=CODE]")
	log.Println("  GET /api/trains/{trainNo}")
	log.Println("Catalog endpoints:")
	log.Println("  GET /api/stops")
	log.Println("  GET /api/stops/nearest?lat=&lon=")
	log.Println("  GET /api/lines/{code}/lateness[?hours=N]")
	log.Println("Feeds:")
	log.Println("  GET /gtfs-rt/vehicle_positions.pb")
	log.Println("  GET /metrics")
	log.Println("Health:")
	log.Println("  GET /health (with database check)")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
