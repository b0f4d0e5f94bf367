package logger

// Log level names beyond the ones slog parses itself
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "nuclearcraft-items"
	CLIServiceName     = "itemctl"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Attribute keys stamped by InitLogger and FromContext
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
