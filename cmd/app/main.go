package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PetBot_Go/internal/bootstrap"
	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/server"
)

// @title PetBot API
// @version 1.0
// @description Persistent pet simulation: adopt, explore, duel, shop and feed.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		_ = closeStore()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = closeStore()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		_ = closeStore()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
	}, store, bootstrap.BuildServices(cfg, store, cat, publisher))

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		CloseStore:         closeStore,
	})

	return err
}
