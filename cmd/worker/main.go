// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/taemotherlode01/ministore-api/internal/config"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/queue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger.Warn("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()
	obs.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if cfg.AMQPURL == "" {
		obs.Logger.Fatal("AMQP_URL is required for the worker")
	}

	q, err := queue.DialAMQP(cfg.AMQPURL)
	if err != nil {
		obs.Logger.Fatal("failed to connect to RabbitMQ", "error", err)
	}
	defer q.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, q, obs.Logger.WithPrefix("audit")); err != nil {
		obs.Logger.Fatal("worker stopped", "error", err)
	}
	obs.Logger.Info("worker shut down")
}

// run consumes record events until ctx is cancelled.
func run(ctx context.Context, q queue.Queue, logger *log.Logger) error {
	if err := queue.StartAuditSubscriber(q, logger); err != nil {
		return err
	}
	logger.Info("worker running, waiting for record events", "topic", queue.TopicRecordEvents)
	<-ctx.Done()
	return nil
}
