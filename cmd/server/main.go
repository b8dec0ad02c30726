// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/taemotherlode01/ministore-api/internal/config"
	"github.com/taemotherlode01/ministore-api/internal/controller"
	"github.com/taemotherlode01/ministore-api/internal/db"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/handler"
	"github.com/taemotherlode01/ministore-api/internal/middleware"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/queue"
	"github.com/taemotherlode01/ministore-api/internal/repository"
	"github.com/taemotherlode01/ministore-api/internal/router"
	"github.com/taemotherlode01/ministore-api/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		obs.Logger.Warn("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()
	obs.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	priceMode, err := filter.ParseMode(cfg.PriceFilterMode)
	if err != nil {
		obs.Logger.Fatal("invalid PRICE_FILTER_MODE", "error", err)
	}

	var (
		customerRepo repository.CustomerRepositoryInterface
		productRepo  repository.ProductRepositoryInterface
		pinger       handler.Pinger
	)
	switch cfg.StoreDriver {
	case "memory":
		obs.Logger.Warn("using in-memory store, data is lost on restart")
		customerRepo = repository.NewMemoryCustomerRepository()
		productRepo = repository.NewMemoryProductRepository()
	case "postgres":
		conn := openDatabase(cfg)
		defer conn.Close()
		customerRepo = &repository.CustomerRepository{DB: conn}
		productRepo = &repository.ProductRepository{DB: conn}
		pinger = conn
	default:
		obs.Logger.Fatal("unknown STORE_DRIVER", "driver", cfg.StoreDriver)
	}

	q := openQueue(cfg)

	customerService := &service.CustomerService{CustomerRepo: customerRepo, Queue: q}
	productService := &service.ProductService{ProductRepo: productRepo, Queue: q, PriceMode: priceMode}

	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	if cfg.APIToken == "" {
		obs.Logger.Warn("API_TOKEN is empty, token-protected routes will reject every request")
	}

	h := router.New(router.Deps{
		Customers: &controller.CustomerController{CustomerService: customerService},
		Products:  &controller.ProductController{ProductService: productService},
		System:    handler.NewSystemHandler(pinger),
		Limiter:   limiter,
		Verifier:  middleware.StaticToken(cfg.APIToken),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pruneLimiter(ctx, limiter, cfg.RateLimitWindow)

	go func() {
		obs.Logger.Info("server running", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver, "price_mode", priceMode.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	obs.Logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obs.Logger.Error("graceful shutdown failed", "error", err)
	}
	if c, ok := q.(interface{ Close() error }); ok {
		_ = c.Close()
	}
	obs.Logger.Info("server stopped")
}

func openDatabase(cfg config.Config) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		obs.Logger.Fatal("failed to connect to database", "error", err)
	}
	if err := db.Migrate(ctx, conn); err != nil {
		obs.Logger.Fatal("failed to migrate database", "error", err)
	}
	return conn
}

// openQueue publishes to RabbitMQ when AMQP_URL is set; cmd/worker consumes
// there. Otherwise events stay in-process and are audited here.
func openQueue(cfg config.Config) queue.Queue {
	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			obs.Logger.Fatal("failed to connect to RabbitMQ", "error", err)
		}
		return q
	}

	q := queue.NewInMemoryQueue()
	if err := queue.StartAuditSubscriber(q, obs.Logger.WithPrefix("audit")); err != nil {
		obs.Logger.Fatal("failed to start audit subscriber", "error", err)
	}
	return q
}

func pruneLimiter(ctx context.Context, l *middleware.RateLimiter, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune()
		}
	}
}
