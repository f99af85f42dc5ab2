package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Nghalu/KingdomFarming/pkg/health"
	pkgkafka "github.com/Nghalu/KingdomFarming/pkg/kafka"

	"github.com/Nghalu/KingdomFarming/internal/config"
	"github.com/Nghalu/KingdomFarming/internal/event"
	handler "github.com/Nghalu/KingdomFarming/internal/handler/http"
	"github.com/Nghalu/KingdomFarming/internal/provider"
	"github.com/Nghalu/KingdomFarming/internal/provider/mock"
	"github.com/Nghalu/KingdomFarming/internal/repository/memory"
	"github.com/Nghalu/KingdomFarming/internal/service"
)

// App wires together all dependencies and runs the marketplace service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Storage.
	farmRepo := memory.NewFarmRepository()
	productRepo := memory.NewProductRepository(farmRepo)
	cartRepo := memory.NewCartRepository()
	checkoutRepo := memory.NewCheckoutRepository()
	orderRepo := memory.NewOrderRepository()

	if cfg.SeedCatalog {
		if err := memory.Seed(ctx, farmRepo, productRepo); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog seeded",
			slog.Int("farms", farmRepo.Count()),
			slog.Int("products", productRepo.Count()),
		)
	}

	// Payment gateway.
	gateway, err := newGateway(cfg.PaymentProvider)
	if err != nil {
		return nil, err
	}
	logger.Info("payment gateway ready", slog.String("provider", gateway.Name()))

	// Build the dependency graph.
	eventProducer := event.NewProducer(producer, logger)
	cartService := service.NewCartService(cartRepo, productRepo, eventProducer, logger)
	catalogService := service.NewCatalogService(productRepo, farmRepo, logger)
	checkoutService := service.NewCheckoutService(checkoutRepo, cartRepo, orderRepo, gateway, eventProducer, logger)
	orderService := service.NewOrderService(orderRepo, farmRepo, productRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		Cart:     cartService,
		Catalog:  catalogService,
		Checkout: checkoutService,
		Orders:   orderService,
		Health:   healthHandler,
		Logger:   logger,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

func newGateway(name string) (provider.Provider, error) {
	switch name {
	case "mock":
		return mock.NewProvider(), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", name)
	}
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	// Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
