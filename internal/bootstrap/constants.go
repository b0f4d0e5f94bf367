package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting item registry service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgLoadingCatalog   = "Loading item catalog"
	LogMsgCatalogReady     = "Item catalog ready"
	LogMsgSyncingItems     = "Syncing items to database mirror..."
	LogMsgItemsSynced      = "Items synced successfully"
	LogMsgItemsUnchanged   = "Items config unchanged, sync skipped"
	LogMsgMirrorDisabled   = "Database mirror disabled"
	ErrMsgFailedLoadItems  = "failed to load items config"
	ErrMsgFailedBuildItems = "failed to build item registry"
	ErrMsgFailedResolver   = "failed to create name resolver"
	ErrMsgFailedConnectDB  = "failed to connect to database"
	ErrMsgFailedMigrate    = "failed to migrate database"
	ErrMsgFailedSyncItems  = "failed to sync items to database"
	CatalogSourceEmbedded  = "embedded"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
