package config

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgParseEnv       = "parse env: %w"
	ErrMsgInvalidConfig  = "invalid configuration: %w"
	ErrMsgSchemaUnset    = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars = "missing required environment variables: %s"
)

// Warnings
const (
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoAPIKey          = "API_KEY is empty - the HTTP API accepts unauthenticated requests"
	WarnMsgDevMode           = "DEV_MODE is on - cooldowns are not enforced"

	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
