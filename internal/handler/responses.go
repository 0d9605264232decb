package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse wraps a list payload with its size
type DataResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes payload into a pooled buffer before touching the
// response, so an encoding failure can still become a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, username string, err error) {
	status, msg := mapServiceErrorToUserMessage(err, username)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "path", r.URL.Path, "username", username, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "path", r.URL.Path, "username", username, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUserNotFoundFormat = "User '%s' not found"
	ErrMsgRateLimitedError   = "GitHub API rate limit exceeded. Please try again later."
	ErrMsgTokenRequiredError = "GitHub authentication is required. Please check server configuration."
	ErrMsgUpstreamError      = "Failed to fetch GitHub contributions. The service may be unavailable."
	ErrMsgDataUnavailable    = "Contribution data is unavailable for this user right now."
	ErrMsgInvalidYearError   = "Year is out of range"
	ErrMsgProfileNotFound    = "Profile not found"
)

// mapServiceErrorToUserMessage converts a service error into an HTTP status
// and a message safe to show to API clients.
func mapServiceErrorToUserMessage(err error, username string) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, ErrMsgInvalidUsernameFormat
	case errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest, ErrMsgInvalidYearError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, fmt.Sprintf(ErrMsgUserNotFoundFormat, username)
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, ErrMsgRateLimitedError
	case errors.Is(err, domain.ErrTokenRequired):
		return http.StatusUnauthorized, ErrMsgTokenRequiredError
	case errors.Is(err, domain.ErrMalformedCalendar):
		return http.StatusServiceUnavailable, ErrMsgDataUnavailable
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUpstreamError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
