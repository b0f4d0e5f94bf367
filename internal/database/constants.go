package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections int32 = 2

	// DefaultPingTimeout bounds the connectivity check in NewPool
	DefaultPingTimeout = 5 * time.Second
)

// MigrationsDir is the directory inside the embedded FS holding goose migrations
const MigrationsDir = "migrations"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrations  = "failed to open migrations"
	ErrMsgFailedToCreateProvider  = "failed to create migration provider"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToMigrateStatus   = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgAppliedMigration                = "Applied migration"
	LogMsgMigrationsUpToDate              = "Database migrations up to date"
)
