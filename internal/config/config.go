package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/PetBot_Go/internal/cooldown"
)

// Config holds the application configuration
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging production"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir          string        `env:"LOG_DIR" envDefault:"logs"`
	APIKey          string        `env:"API_KEY"` // empty disables API key auth
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s" validate:"gt=0"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite" validate:"oneof=postgres sqlite memory"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/petbot.db" validate:"required_if=StoreDriver sqlite"`

	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBName        string        `env:"DB_NAME" envDefault:"petbot"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`

	CatalogPath     string        `env:"CATALOG_PATH"` // empty uses the built-in catalog
	DevMode         bool          `env:"DEV_MODE" envDefault:"false"`
	ExploreCooldown time.Duration `env:"EXPLORE_COOLDOWN" envDefault:"5m" validate:"gte=0"`
	DuelCooldown    time.Duration `env:"DUEL_COOLDOWN" envDefault:"30m" validate:"gte=0"`

	Locale          string        `env:"LOCALE" envDefault:"en"`
	RenderCacheSize int           `env:"RENDER_CACHE_SIZE" envDefault:"512" validate:"min=1"`
	RenderCacheTTL  time.Duration `env:"RENDER_CACHE_TTL" envDefault:"5m" validate:"gt=0"`

	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"min=0"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s" validate:"gt=0"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
}

// Load reads .env (if present) and the process environment into a
// validated Config.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses the process environment without touching .env files
func FromEnv() (*Config, error) {
	return parse(env.Options{})
}

// FromMap parses configuration from an explicit variable set
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf(ErrMsgInvalidConfig, verrs)
		}
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Cooldowns returns the configured cooldown overrides keyed by action
func (c *Config) Cooldowns() map[string]time.Duration {
	return map[string]time.Duration{
		cooldown.ActionExplore: c.ExploreCooldown,
		cooldown.ActionDuel:    c.DuelCooldown,
	}
}
