package bootstrap

// ServiceName tags every log line and names the log file
const ServiceName = "petbot"

// DirPermission is the permission for created directories
const DirPermission = 0755

// Log messages for startup
const (
	LogMsgStarting          = "Starting PetBot"
	LogMsgConfigLoaded      = "Configuration loaded"
	LogMsgCatalogLoaded     = "Catalog loaded"
	LogMsgStoreOpened       = "Pet store opened"
	LogMsgMigrationsApplied = "Migrations applied"
	LogMsgEventSystemInit   = "Event system initialized"
	LogMsgMetricsRegistered = "Metrics collector registered"
	LogMsgEventReceived     = "Domain event"
)

// Error messages for startup
const (
	ErrMsgLoadCatalog         = "failed to load catalog"
	ErrMsgUnknownDriver       = "unknown store driver %q"
	ErrMsgOpenSQLite          = "failed to open sqlite store"
	ErrMsgConnectPostgres     = "failed to connect to postgres"
	ErrMsgMigratePostgres     = "failed to migrate postgres"
	ErrMsgCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgCreatePublisher     = "failed to create resilient publisher"
	ErrMsgRegisterMetrics     = "failed to register metrics collector"
	ErrMsgCreateSQLiteDir     = "failed to create sqlite directory"
	ErrMsgInitLogger          = "failed to initialize logger"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingStore               = "Closing pet store..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Pet store close failed"
)
