package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	CloseStore         func() error
}

// GracefulShutdown stops the HTTP server first so no new work arrives, then
// flushes pending events, then closes the store. Errors are logged and do
// not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if c.ResilientPublisher != nil {
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgClosingStore)
	if c.CloseStore != nil {
		if err := c.CloseStore(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
