package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgBodyTooLarge    = "Request body too large"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgBadForwardedFor  = "Ignoring malformed forwarded address"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRetryAfter      = "Retry-After"
	HeaderRequestID       = "X-Request-ID"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderContentSecurity = "Content-Security-Policy"
	HeaderReferrerPolicy  = "Referrer-Policy"
)

// Security header values. Responses are JSON only, so nothing may be framed or loaded.
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoContent  = "default-src 'none'; frame-ancestors 'none'"
	HeaderValueNoReferrer = "no-referrer"
)

// Defaults for Limits fields left at zero
const (
	DefaultRateLimitWindow      = 5 * time.Minute
	DefaultRateLimitMaxRequests = 1000
	DefaultFailedAuthAlertCount = 5
	DefaultMaxRequestBodyBytes  = 1 << 20
)

const (
	ReadHeaderTimeout     = 5 * time.Second
	HighRateLogSampleRate = 100
)

// Route paths outside the versioned API
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
)

// DefaultPublicPaths are served without an API key when Options.PublicPaths is nil
var DefaultPublicPaths = []string{PathHealthz, PathReadyz, PathMetrics, PathVersion}

// quietPaths are polled by orchestration and scrapers and are not request-logged
var quietPaths = []string{PathHealthz, PathReadyz, PathMetrics}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
