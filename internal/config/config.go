package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Service
	Environment string `validate:"required,oneof=dev development staging prod production test"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	Port        int    `validate:"min=1,max=65535"`

	// HTTP security
	// APIKey empty disables API key checks
	APIKey               string
	TrustedProxies       []string      `validate:"dive,ip"`
	RateLimitWindow      time.Duration `validate:"gt=0"`
	RateLimitMaxRequests int           `validate:"min=1"`

	// Logging
	LogLevel  string `validate:"required,oneof=debug info warn warning error"`
	LogFormat string `validate:"required,oneof=json text"`
	LogDir    string // empty logs to stdout only

	// Item catalog
	ItemsConfigPath   string // empty means the embedded seed catalog
	ResolverCacheSize int    `validate:"min=1"`

	// Database mirror
	DBSyncEnabled   bool
	DBUser          string `validate:"required_if=DBSyncEnabled true"`
	DBPassword      string
	DBHost          string `validate:"required_if=DBSyncEnabled true"`
	DBPort          string `validate:"required_if=DBSyncEnabled true"`
	DBName          string `validate:"required_if=DBSyncEnabled true"`
	DBMaxConns      int    `validate:"min=1"`
	DBMaxConnIdle   time.Duration
	DBMaxConnLife   time.Duration
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}

	cfg := &Config{
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		Port:        port,

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		RateLimitWindow:      getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		RateLimitMaxRequests: getEnvAsInt(EnvRateLimitMaxRequests, DefaultRateLimitMaxRequests),

		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:    getEnv(EnvLogDir, ""),

		ItemsConfigPath:   getEnv(EnvItemsConfigPath, ""),
		ResolverCacheSize: getEnvAsInt(EnvResolverCacheSize, DefaultResolverCacheSize),

		DBSyncEnabled:   getEnvAsBool(EnvDBSyncEnabled, false),
		DBUser:          getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:      getEnv(EnvDBPassword, ""),
		DBHost:          getEnv(EnvDBHost, DefaultDBHost),
		DBPort:          getEnv(EnvDBPort, DefaultDBPort),
		DBName:          getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:      getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle:   getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle),
		DBMaxConnLife:   getEnvAsDuration(EnvDBMaxConnLife, DefaultDBMaxConnLife),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvAsList splits a comma separated environment variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves a boolean environment variable or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
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

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
