package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PetBot_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the postgres server to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	if cfg.StoreDriver != config.DriverPostgres {
		PrintInfo("Store driver %s needs no server", cfg.StoreDriver)
		return nil
	}
	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 0; i < waitMaxRetries; i++ {
		lastErr = pingOnce(ctx, adminConnString(cfg))
		if lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitRetryInterval):
		}
	}
	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, lastErr)
}

func pingOnce(ctx context.Context, connString string) error {
	ctx, cancel := context.WithTimeout(ctx, waitRetryInterval)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())
	return conn.Ping(ctx)
}
