package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/config"
	"bakery_storefront/internal/database"
	"bakery_storefront/internal/events"
	"bakery_storefront/internal/handlers"
	"bakery_storefront/internal/logger"
	"bakery_storefront/internal/metrics"
	"bakery_storefront/internal/migrations"
	"bakery_storefront/internal/modal"
	"bakery_storefront/internal/redis"
	"bakery_storefront/internal/repository"
	"bakery_storefront/internal/seed"
	"bakery_storefront/internal/services"
	"bakery_storefront/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer zlog.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
	)
	switch cfg.StoreDriver {
	case "memory":
		productRepo = repository.NewMemoryProductRepository(seed.Products())
		orderRepo = repository.NewMemoryOrderRepository(seed.Orders())
	default:
		db, err := database.Initialize(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal("Failed to connect to database", zap.String("driver", cfg.StoreDriver), zap.Error(err))
		}
		if err := migrations.RunMigrations(db, false); err != nil {
			zlog.Fatal("Failed to migrate database", zap.Error(err))
		}
		productRepo = repository.NewProductRepository(db)
		orderRepo = repository.NewOrderRepository(db)
	}

	// Initialize session storage
	var storage session.Storage
	switch cfg.SessionDriver {
	case "redis":
		redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.SessionTimeout)*time.Second)
		if err != nil {
			zlog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		storage = redisClient
	default:
		storage = session.NewMemoryStorage()
	}

	bus := events.NewBus()
	board := modal.NewBoard(bus)
	metrics.Observe(bus)

	sessions := session.NewManager(storage, session.Options{
		ToastDuration: cfg.ToastDuration,
		IdleTimeout:   time.Duration(cfg.SessionTimeout) * time.Second,
		OnEvict:       func(id string) { board.Close(id) },
	}, zlog)

	// Initialize services
	picker := services.NewRandomPicker()
	authService, err := services.NewAuthService(seed.Users(), seed.Passwords(), zlog)
	if err != nil {
		zlog.Fatal("Failed to load accounts", zap.Error(err))
	}
	catalogService := services.NewCatalogService(productRepo, picker)
	orderService := services.NewOrderService(orderRepo, productRepo, bus, zlog)
	checkoutService := services.NewCheckoutService(orderRepo, bus, picker, services.CheckoutOptions{
		Mode:  cfg.CheckoutMode,
		Delay: cfg.OrderProcessingDelay,
	}, zlog)

	router := handlers.NewRouter(handlers.RouterConfig{
		Sessions:        sessions,
		CookieMaxAge:    cfg.SessionTimeout,
		AuthService:     authService,
		CatalogService:  catalogService,
		OrderService:    orderService,
		CheckoutService: checkoutService,
		Board:           board,
		Log:             zlog,
	})

	// Start server
	zlog.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("store_driver", cfg.StoreDriver),
		zap.String("session_driver", cfg.SessionDriver),
		zap.String("checkout_mode", cfg.CheckoutMode),
	)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
