package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/gitfolio/internal/analytics"
	"github.com/osse101/gitfolio/internal/export"
	"github.com/osse101/gitfolio/internal/githubapi"
	"github.com/osse101/gitfolio/internal/logger"
)

// DefaultActivityPerPage is used when per_page is absent.
const DefaultActivityPerPage = 10

// HandleGetAnalytics returns the full dashboard payload
// @Summary Get analytics
// @Description Profile, repositories, contribution calendar, statistics, languages and achievements for a GitHub user
// @Tags github
// @Produce json
// @Param username path string true "GitHub username"
// @Param year query int false "Calendar year; omitted means the last 12 months"
// @Success 200 {object} domain.Analytics
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/github/{username} [get]
func HandleGetAnalytics(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}
		year, ok := yearParam(w, r)
		if !ok {
			return
		}

		result, err := svc.GetAnalytics(r.Context(), username, year)
		if err != nil {
			respondServiceError(w, r, username, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgAnalyticsServed, "username", username, "year", year)
		w.Header().Set(HeaderCacheControl, CacheControlContributions)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetContributions returns the validated calendar with its statistics
// @Summary Get contributions
// @Description Contribution calendar, activity statistics and chart series
// @Tags github
// @Produce json
// @Param username path string true "GitHub username"
// @Param year query int false "Calendar year; omitted means the last 12 months"
// @Success 200 {object} domain.ContributionReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/github/{username}/contributions [get]
func HandleGetContributions(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}
		year, ok := yearParam(w, r)
		if !ok {
			return
		}

		report, err := svc.GetContributions(r.Context(), username, year)
		if err != nil {
			respondServiceError(w, r, username, err)
			return
		}

		w.Header().Set(HeaderCacheControl, CacheControlContributions)
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleGetLanguages returns the ranked language distribution
// @Summary Get languages
// @Tags github
// @Produce json
// @Param username path string true "GitHub username"
// @Param limit query int false "Number of languages (default 10)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/github/{username}/languages [get]
func HandleGetLanguages(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntParam(r, ParamLimit, 0)
		if !ok || limit < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitParam)
			return
		}

		languages, err := svc.GetLanguages(r.Context(), username, limit)
		if err != nil {
			respondServiceError(w, r, username, err)
			return
		}

		w.Header().Set(HeaderCacheControl, CacheControlLanguages)
		respondJSON(w, http.StatusOK, DataResponse{Count: len(languages), Data: languages})
	}
}

// HandleGetActivity returns one page of the user's public events
// @Summary Get recent activity
// @Tags github
// @Produce json
// @Param username path string true "GitHub username"
// @Param page query int false "Page, 1-10"
// @Param per_page query int false "Events per page, 1-30 (default 10)"
// @Success 200 {object} domain.RecentActivity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/github/{username}/activity [get]
func HandleGetActivity(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		page, ok := GetOptionalIntParam(r, ParamPage, githubapi.MinActivityPage)
		if !ok || page < githubapi.MinActivityPage || page > githubapi.MaxActivityPage {
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf(ErrMsgInvalidPageParam, githubapi.MinActivityPage, githubapi.MaxActivityPage))
			return
		}
		perPage, ok := GetOptionalIntParam(r, ParamPerPage, DefaultActivityPerPage)
		if !ok || perPage < githubapi.MinActivityPerPage || perPage > githubapi.MaxActivityPerPage {
			respondError(w, http.StatusBadRequest,
				fmt.Sprintf(ErrMsgInvalidPerPageParam, githubapi.MinActivityPerPage, githubapi.MaxActivityPerPage))
			return
		}

		activity, err := svc.GetRecentActivity(r.Context(), username, page, perPage)
		if err != nil {
			respondServiceError(w, r, username, err)
			return
		}

		w.Header().Set(HeaderCacheControl, CacheControlActivity)
		respondJSON(w, http.StatusOK, activity)
	}
}

// HandleExport downloads the analytics as a JSON document, a text summary or a CSV calendar
// @Summary Export analytics
// @Tags github
// @Produce json
// @Produce plain
// @Produce text/csv
// @Param username path string true "GitHub username"
// @Param format query string false "json (default), text or csv"
// @Param year query int false "Calendar year"
// @Param Accept-Language header string false "Locale used for number formatting in text exports"
// @Success 200 {object} export.Document
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/github/{username}/export [get]
func HandleExport(svc analytics.Service, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}
		year, ok := yearParam(w, r)
		if !ok {
			return
		}
		format, err := export.ParseFormat(r.URL.Query().Get(ParamFormat))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.GetAnalytics(r.Context(), username, year)
		if err != nil {
			respondServiceError(w, r, username, err)
			return
		}

		exportedAt := now()
		doc := export.NewDocument(result, year, exportedAt)

		var buf bytes.Buffer
		switch format {
		case export.FormatText:
			err = export.WriteText(&buf, doc, export.MatchLanguage(r.Header.Get(HeaderAcceptLanguage)))
		case export.FormatCSV:
			err = export.WriteCSV(&buf, result.Calendar)
		default:
			err = export.WriteJSON(&buf, doc)
		}
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "username", username, "format", format, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}

		filename := export.Filename(result.User.Login, format, exportedAt)
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set(HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgExportWritten, "username", username, "format", format, "filename", filename)
	}
}
