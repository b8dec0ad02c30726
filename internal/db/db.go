// internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/taemotherlode01/ministore-api/internal/obs"
)

// Schema creates the customers and products tables when missing.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id  INTEGER PRIMARY KEY,
		first_name   TEXT NOT NULL DEFAULT '',
		last_name    TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		product_id  INTEGER PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		price       DOUBLE PRECISION NOT NULL DEFAULT 0,
		category    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT ''
	)`,
}

// Open connects to Postgres and verifies the connection with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	obs.Logger.Info("connected to database")
	return conn, nil
}

// Migrate applies Schema inside a single transaction.
func Migrate(ctx context.Context, conn *sql.DB) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range Schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return tx.Commit()
}

// ExecScript runs a SQL file's contents as one statement batch.
func ExecScript(ctx context.Context, conn *sql.DB, script string) error {
	if _, err := conn.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("exec script: %w", err)
	}
	return nil
}
