package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCSP            = "Content-Security-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueAPIOnlyCSP           = "default-src 'none'; frame-ancestors 'none'"
)

// Limits
const (
	// MaxRequestBodyBytes caps request bodies; only profile saves carry one.
	MaxRequestBodyBytes = 1 << 20
	// DefaultRateLimit is the request budget per client IP and window.
	DefaultRateLimit = 600
	// DefaultRateWindow is the length of a rate limit window.
	DefaultRateWindow = 5 * time.Minute
	// FailedAuthAlertThreshold is the failed-auth count per window that raises an alert.
	FailedAuthAlertThreshold = 5
	// ReadHeaderTimeout bounds slow clients sending headers.
	ReadHeaderTimeout = 5 * time.Second
)

// unloggedPaths are probe and scrape endpoints kept out of request logs.
var unloggedPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces secret header values in logs.
const RedactedValue = "[REDACTED]"
