package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/krit/mlbb-counter-website/internal/api"
	"github.com/krit/mlbb-counter-website/internal/config"
	"github.com/krit/mlbb-counter-website/internal/repository"
	"github.com/krit/mlbb-counter-website/internal/repository/memstore"
	"github.com/krit/mlbb-counter-website/internal/repository/postgres"
	"github.com/krit/mlbb-counter-website/internal/repository/redisstore"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Pick the storage backend: Redis, then Postgres, then in-memory
	kv, err := newKVStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Initialize stores and services
	stores := repository.NewStores(kv)
	services := service.NewServices(stores, cfg)

	// Initialize router
	router := api.NewRouter(services)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func newKVStore(cfg *config.Config) (repository.KVStore, error) {
	if cfg.RedisURL != "" {
		log.Println("Using Redis storage")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return redisstore.New(ctx, cfg.RedisURL)
	}
	if cfg.DatabaseURL != "" {
		log.Println("Using Postgres storage")
		return postgres.New(cfg.DatabaseURL)
	}
	log.Println("No storage configured, admin edits will not survive restarts")
	return memstore.New(), nil
}
