package database

// Pool sizing
const (
	// DefaultMinConnections keeps a couple of warm connections for the pet
	// transactions that dominate traffic
	DefaultMinConnections = 2
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to postgres"
)
