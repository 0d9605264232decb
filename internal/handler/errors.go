package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameters
	ErrMsgInvalidUsernameFormat = "Invalid GitHub username format"
	ErrMsgInvalidYearParam      = "Year must be a number"
	ErrMsgInvalidLimitParam     = "Limit must be a positive number"
	ErrMsgInvalidPageParam      = "Page must be between %d and %d"
	ErrMsgInvalidPerPageParam   = "Per page must be between %d and %d"
	ErrMsgInvalidProfileID      = "Invalid profile id"
	ErrMsgMissingUserID         = "user_id is required"
	ErrMsgInvalidUserID         = "user_id must be a UUID"

	// Export
	ErrMsgExportFailed = "Failed to export analytics"
)

// Success messages for API responses
const (
	MsgProfileDeleted = "Profile deleted successfully"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgValidationFailed   = "Request validation failed"
	LogMsgServiceError       = "Service call failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgAnalyticsServed    = "Analytics served"
	LogMsgExportWritten      = "Export written"
	LogMsgProfileSaveRequest = "Save profile request"
)

// Response headers and their values
const (
	HeaderCacheControl       = "Cache-Control"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAcceptLanguage     = "Accept-Language"

	CacheControlContributions = "public, s-maxage=300, stale-while-revalidate=600"
	CacheControlLanguages     = "public, s-maxage=600, stale-while-revalidate=1200"
	CacheControlActivity      = "public, s-maxage=300, stale-while-revalidate=600"
)

// Query parameter names
const (
	ParamUsername = "username"
	ParamID       = "id"
	ParamYear     = "year"
	ParamLimit    = "limit"
	ParamPage     = "page"
	ParamPerPage  = "per_page"
	ParamFormat   = "format"
	ParamUserID   = "user_id"
)
