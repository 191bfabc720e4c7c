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
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"transverse/internal/adminauth"
	"transverse/internal/app"
	"transverse/internal/config"
	"transverse/internal/handler"
	internalRedis "transverse/internal/redis"
	"transverse/internal/repository"
	"transverse/internal/repository/memory"
	"transverse/internal/repository/postgres"
	"transverse/internal/seed"
	"transverse/internal/service"
)

func main() {
	// Load .env if present, then configuration.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before the database so we can instrument it).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// The ride history archive runs on PostgreSQL when enabled, otherwise on
	// the seeded in-memory archive.
	var historyRepo repository.RideHistoryRepository
	if cfg.Database.Enabled {
		db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")
		historyRepo = postgres.NewRideHistoryRepository(db)
	} else {
		historyRepo = memory.NewRideHistoryRepository(seed.Rides())
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(historyRepo, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(historyRepo repository.RideHistoryRepository, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Durable session storage in Redis.
	sessionRepo := internalRedis.NewSessionStore(redisClient)

	// External admin login collaborator.
	adminClient := adminauth.NewClient(cfg.AdminAuth.BaseURL, cfg.AdminAuth.Timeout)

	// Initialize services with seed data.
	sessionService := service.NewSessionService(sessionRepo, adminClient, seed.BaseUser(), seed.AdminUser())
	rideService := service.NewRideService(historyRepo, seed.VehicleClasses(), seed.PaymentMethods(), service.RideOptions{
		AcceptDelay: cfg.Ride.AcceptDelay,
	})
	conversations, messages := seed.Conversations()
	chatService := service.NewConversationService(seed.SelfID, seed.Users(), conversations, messages)
	deliveryService := service.NewDeliveryService(
		seed.SelfID,
		seed.Restaurants(),
		seed.RestaurantCategories(),
		seed.MenuItems(),
		seed.RestaurantPickupAddress(),
		seed.DeliveryOrders(),
		service.DeliveryOptions{StatusDelay: cfg.Delivery.StatusDelay},
	)
	currencyService := service.NewCurrencyService(sessionRepo, seed.Countries())

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(sessionService)
	profileHandler := handler.NewProfileHandler(sessionService)
	rideHandler := handler.NewRideHandler(rideService)
	chatHandler := handler.NewChatHandler(chatService)
	catalogHandler := handler.NewCatalogHandler(rideService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:     authHandler,
		ProfileHandler:  profileHandler,
		RideHandler:     rideHandler,
		ChatHandler:     chatHandler,
		CatalogHandler:  catalogHandler,
		DeliveryHandler: deliveryHandler,
		CurrencyHandler: currencyHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
