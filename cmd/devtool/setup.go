package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PetBot_Go/internal/config"
)

// SetupCommand creates the application database if needed and migrates it
type SetupCommand struct{}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Create the database (postgres) and apply migrations"
}

func (c *SetupCommand) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	PrintHeader("Setting up " + appName)

	if cfg.StoreDriver == config.DriverPostgres {
		created, err := createDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		if created {
			PrintSuccess("Database %s created", cfg.DBName)
		} else {
			PrintInfo("Database %s already exists", cfg.DBName)
		}
	}

	if err := migrate(ctx, cfg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	PrintSuccess("Setup complete")
	return nil
}

// ResetCommand drops and recreates the postgres database, or removes the
// sqlite file, then migrates from scratch.
type ResetCommand struct{}

func (c *ResetCommand) Name() string {
	return "reset-db"
}

func (c *ResetCommand) Description() string {
	return "Drop all pet data and recreate the schema (--force skips the prompt)"
}

func (c *ResetCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	PrintHeader("Resetting " + cfg.StoreDriver + " store")

	if cfg.Environment == "production" {
		return fmt.Errorf("refusing to reset a production store")
	}
	if !hasFlag(args, "--force") && !confirm(fmt.Sprintf("Type %q to delete every pet", confirmYes)) {
		PrintWarning("Aborted")
		return nil
	}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		PrintInfo("Memory store is empty on every start, nothing to do")
		return nil
	case config.DriverSQLite:
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(cfg.SQLitePath + suffix); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
		PrintInfo("Removed %s", cfg.SQLitePath)
	case config.DriverPostgres:
		if err := dropDatabase(ctx, cfg); err != nil {
			return err
		}
		if _, err := createDatabase(ctx, cfg); err != nil {
			return err
		}
	}

	if err := migrate(ctx, cfg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	PrintSuccess("Reset complete")
	return nil
}

func createDatabase(ctx context.Context, cfg *config.Config) (bool, error) {
	conn, err := pgx.Connect(ctx, adminConnString(cfg))
	if err != nil {
		return false, fmt.Errorf("connect to %s database: %w", maintenanceDB, err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return false, fmt.Errorf("create database: %w", err)
	}
	return true, nil
}

func dropDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, adminConnString(cfg))
	if err != nil {
		return fmt.Errorf("connect to %s database: %w", maintenanceDB, err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName)
	if err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}
	PrintInfo("Dropped database %s", cfg.DBName)
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func confirm(prompt string) bool {
	fmt.Print(prompt + ": ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == confirmYes
}
