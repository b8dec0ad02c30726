// cmd/seeder/main.go
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/taemotherlode01/ministore-api/internal/config"
	"github.com/taemotherlode01/ministore-api/internal/db"
	"github.com/taemotherlode01/ministore-api/internal/obs"
)

var seedFiles = []string{
	"seed/customers.sql",
	"seed/products.sql",
}

func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger.Warn("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()
	obs.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		obs.Logger.Fatal("failed to connect to database", "error", err)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		obs.Logger.Fatal("failed to migrate", "error", err)
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			obs.Logger.Fatal("failed to read seed file", "file", file, "error", err)
		}
		if err := db.ExecScript(ctx, conn, string(content)); err != nil {
			obs.Logger.Fatal("failed to execute seed file", "file", file, "error", err)
		}
		obs.Logger.Info("seeded", "file", file)
	}

	obs.Logger.Info("database seeding completed")
}
