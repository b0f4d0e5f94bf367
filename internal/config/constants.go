package config

import "time"

// Environment variable names
const (
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvItemsConfigPath   = "ITEMS_CONFIG_PATH"
	EnvResolverCacheSize = "RESOLVER_CACHE_SIZE"
	EnvDBSyncEnabled     = "DB_SYNC_ENABLED"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLife     = "DB_MAX_CONN_LIFE"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvAPIKey            = "API_KEY"
	EnvLogDir            = "LOG_DIR"
	EnvTrustedProxies    = "TRUSTED_PROXIES"

	EnvRateLimitWindow      = "RATE_LIMIT_WINDOW"
	EnvRateLimitMaxRequests = "RATE_LIMIT_MAX_REQUESTS"
)

// Default values
const (
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "nuclearcraft-items"
	DefaultVersion           = "dev"
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultResolverCacheSize = 256
	DefaultDBUser            = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "nuclearcraft"
	DefaultDBMaxConns        = 10

	DefaultRateLimitMaxRequests = 1000

	DefaultDBMaxConnIdle   = 5 * time.Minute
	DefaultDBMaxConnLife   = time.Hour
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimitWindow = 5 * time.Minute
)
