package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/PetBot_Go/internal/config"
	"github.com/osse101/PetBot_Go/internal/handler"
	"github.com/osse101/PetBot_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and a dated file
// under cfg.LogDir. The caller closes the returned file.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	lc := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		ServiceName,
		handler.ResolveVersion(),
		cfg.Environment,
		cfg.Environment == "dev",
	)

	closer, err := logger.InitLogger(lc, cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInitLogger, err)
	}

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", lc.Version)

	slog.Debug(LogMsgConfigLoaded,
		"store_driver", cfg.StoreDriver,
		"port", cfg.Port,
		"dev_mode", cfg.DevMode,
		"explore_cooldown", cfg.ExploreCooldown,
		"duel_cooldown", cfg.DuelCooldown)

	return closer, nil
}
