package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"Plank/config"
	"Plank/database"
	"Plank/handlers"
	"Plank/logger"
	"Plank/middleware"
	"Plank/services"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	logger.Init(cfg.Environment, cfg.Debug)

	// Connect to the store
	var store services.Store
	if cfg.DatabaseURL == "memory" {
		slog.Warn("Using in-memory store, data will not survive a restart")
		store = database.NewMemoryStore()
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		// Run migrations
		if err := db.RunMigrations(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		store = db
	}

	// Seed admin user
	if err := services.EnsureAdmin(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	uploads := services.NewUploads(cfg.UploadDir)
	api := handlers.NewAPI(store, uploads)

	// Setup routes
	r := chi.NewRouter()
	r.Use(middleware.Logging)

	// Uploaded images are served back publicly
	fs := http.FileServer(http.Dir(cfg.UploadDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Mount("/", api.Routes())

	// Start server
	addr := ":" + cfg.ServerPort
	slog.Info("Plank is starting", "addr", addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
