package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/gitfolio/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On failure the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// usernameParam reads and checks the {username} path parameter.
func usernameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := strings.TrimSpace(chi.URLParam(r, ParamUsername))
	if err := GetValidator().ValidateVar(username, "required,github_username"); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgValidationFailed, "username", username)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUsernameFormat)
		return "", false
	}
	return username, true
}

// yearParam reads the optional year query parameter. Absent means 0, the
// rolling last-year window. Range checks belong to the service.
func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get(ParamYear)
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidYearParam)
		return 0, false
	}
	return year, true
}

// GetOptionalIntParam returns the integer query parameter or defaultValue
// when absent. ok is false if the value is present but not an integer.
func GetOptionalIntParam(r *http.Request, name string, defaultValue int) (value int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
