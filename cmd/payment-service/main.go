package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"payment-gateway/internal/auth"
	"payment-gateway/internal/config"
	"payment-gateway/internal/gateway"
	"payment-gateway/internal/gateway/storage"
	"payment-gateway/internal/kafka"
	"payment-gateway/internal/logger"
	"payment-gateway/internal/payment_api"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Payment Gateway initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()

	// --- Auth token cache (optional) ---
	var tokenCache *auth.TokenCache
	if cfg.Redis.Enabled {
		cache, err := auth.InitializeTokenCache(cfg.Redis.Addr, cfg.Auth.TokenCacheTTL)
		if err != nil {
			log.Fatal("REDIS", fmt.Sprintf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err))
		}
		defer cache.Close()
		tokenCache = cache
		log.Info("REDIS", fmt.Sprintf("Token cache connected to %s", cfg.Redis.Addr))
	} else {
		log.Info("REDIS", "Redis disabled, token cache off")
	}

	// --- Kafka ---
	producer := kafka.NewProducer(cfg.Kafka, log)
	defer producer.Close()
	if producer.MockMode {
		log.Info("KAFKA", "Producer running in mock mode, events are logged only")
	} else {
		log.Info("KAFKA", fmt.Sprintf("Producer connected to %v", cfg.Kafka.Brokers))
		topics := []string{
			cfg.Kafka.Topics.PaymentEvents,
			cfg.Kafka.Topics.PaymentSuccess,
			cfg.Kafka.Topics.PaymentFailed,
		}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, topics); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		}
	}

	// --- Gateway engine ---
	store := storage.NewMemoryStore()
	defer store.Close()
	engine := gateway.New(store, cfg.Gateway)
	log.Info("GATEWAY", fmt.Sprintf("%s engine ready (version %s)", cfg.Gateway.Name, cfg.Gateway.Version))

	handler := payment_api.NewHandler(engine, log, producer)

	// --- Router ---
	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(handler.RequestLogger)

	handler.RegisterRoutes(r, auth.Middleware(cfg.Auth.JWTSecret, tokenCache))
	log.Info("ROUTER", "Payment routes registered under /api/payment")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Payment Gateway running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Payment Gateway shutdown complete")
	}
}
