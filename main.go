package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"storefront/controllers"
	"storefront/database"
	"storefront/kafka"
	"storefront/logger"
	"storefront/middleware"
	"storefront/models"
	"storefront/providers"
	"storefront/repository"
	"storefront/routes"
	servicepkg "storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	zlog := logger.Initialize(getEnv("APP_ENV", "production"))
	defer zlog.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		zlog.Fatal("Failed to load config", zap.Error(err))
	}

	// Order archive
	db, err := database.ConnectPostgres(database.PostgresConfig{
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	}, zlog, &models.Order{})
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	// Cart storage: Redis when configured, in-memory otherwise
	var cartRepo repository.CartRepository
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cartRepo = repository.NewRedisCartRepository(redisClient, cfg.CartTTL)
		zlog.Info("Using Redis cart store")
	} else {
		cartRepo = repository.NewMemoryCartRepository()
		zlog.Info("Using in-memory cart store")
	}

	// Checkout event fan-out (optional)
	var publisher servicepkg.CheckoutEventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
		zlog.Info("Kafka checkout events enabled", zap.String("topic", cfg.KafkaTopic))
	}

	// External collaborators and DI chain
	feed := providers.NewSheetsFeed(cfg.FeedURL)
	submitter := providers.NewAppsScriptSubmitter(cfg.SubmitURL)
	orderRepo := repository.NewGormOrderRepository(db)

	catalogService := servicepkg.NewCatalogService(feed, zlog)
	cartService := servicepkg.NewCartService(cartRepo, catalogService, zlog)
	checkoutService := servicepkg.NewCheckoutService(cartService, orderRepo, submitter, publisher, zlog)

	// Initial catalog load; a failed first load leaves the catalog empty
	// until the next refresh, it never prevents startup.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if _, svcErr := catalogService.Refresh(loadCtx); svcErr != nil {
		zlog.Warn("Initial catalog load failed", zap.String("reason", svcErr.Message))
	}
	cancelLoad()

	stopRefresh := make(chan struct{})
	if cfg.CatalogRefreshInterval > 0 {
		go refreshLoop(catalogService, cfg.CatalogRefreshInterval, stopRefresh)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger(zlog))
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "storefront"})
	})

	routes.RegisterRoutes(
		router,
		controllers.NewCatalogController(catalogService),
		controllers.NewCartController(cartService),
		controllers.NewCheckoutController(checkoutService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("Storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("Shutting down gracefully...")
	close(stopRefresh)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Shutdown error", zap.Error(err))
	}
	zlog.Info("Server shutdown complete")
}

// refreshLoop re-fetches the catalog on a fixed interval until stopped.
// Failed refreshes keep the previous snapshot and are retried on the next
// tick only; there is no backoff or immediate retry.
func refreshLoop(catalog servicepkg.CatalogService, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			_, _ = catalog.Refresh(ctx)
			cancel()
		case <-stop:
			return
		}
	}
}
