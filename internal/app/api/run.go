package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	catalogmemory "github.com/commercekit/commerce-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/commercekit/commerce-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/commercekit/commerce-api/internal/domains/catalog/application"
	catalogports "github.com/commercekit/commerce-api/internal/domains/catalog/ports"

	customermemory "github.com/commercekit/commerce-api/internal/domains/customers/adapters/memory"
	customerobs "github.com/commercekit/commerce-api/internal/domains/customers/adapters/observability"
	customerpostgres "github.com/commercekit/commerce-api/internal/domains/customers/adapters/persistence/postgres"
	customerapp "github.com/commercekit/commerce-api/internal/domains/customers/application"
	customerports "github.com/commercekit/commerce-api/internal/domains/customers/ports"

	ordermemory "github.com/commercekit/commerce-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/commercekit/commerce-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/commercekit/commerce-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/commercekit/commerce-api/internal/domains/orders/application"
	orderports "github.com/commercekit/commerce-api/internal/domains/orders/ports"

	platformobservability "github.com/commercekit/commerce-api/internal/platform/observability"
	platformpostgres "github.com/commercekit/commerce-api/internal/platform/postgres"
	"github.com/commercekit/commerce-api/internal/server"
)

// Run boots the commerce HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "commerce-api"
	cfg := LoadConfig()

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	if !cfg.GinDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	customerRepo, productRepo, orderRepo := buildRepositories(db, logger)

	customerService := customerobs.New(
		customerapp.NewService(customerRepo),
		customerobs.WithLogger(logger),
		customerobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customerobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	productService := catalogapp.NewService(productRepo)
	orderService := orderobs.New(
		orderapp.NewService(orderRepo, productRepo, customerRepo),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := server.ApiHandleFunctions{
		CustomerAPI: server.NewCustomerAPI(customerService),
		ProductAPI:  server.NewProductAPI(productService),
		OrderAPI:    server.NewOrderAPI(orderService),
	}

	router := server.NewRouter(handlers, otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("commerce API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("commerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildRepositories(db *gorm.DB, logger *slog.Logger) (customerports.Repository, catalogports.Repository, orderports.Repository) {
	if db == nil {
		return customermemory.NewRepository(), catalogmemory.NewRepository(), ordermemory.NewRepository()
	}
	if logger != nil {
		logger.Info("repositories configured with postgres")
	}
	return customerpostgres.NewRepository(db), catalogpostgres.NewRepository(db), orderpostgres.NewRepository(db)
}
