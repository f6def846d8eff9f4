package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
	DefaultConnectBackoff  = 500 * time.Millisecond
)

// Migration Constants
const (
	MigrationDialect = "postgres"
	SQLDriverName    = "pgx"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open sql connection for migrations"
	ErrMsgFailedToSetDialect      = "failed to set goose dialect"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
	ErrMsgConnectGaveUpFmt        = "database unreachable after %d attempts: %w"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgConnectAttemptFailed            = "Database connection attempt failed"
)
