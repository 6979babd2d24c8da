package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PetBot_Go/internal/config"
)

func main() {
	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&SetupCommand{})
	registry.Register(&ResetCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&SeedCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, cfg, os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		stop()
		os.Exit(1)
	}
}
