package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/profile"
	"github.com/osse101/gitfolio/internal/validation"
)

// SaveProfileRequest is the body of a profile save
type SaveProfileRequest struct {
	UserID             string `json:"user_id" validate:"required,uuid"`
	GitHubUsername     string `json:"github_username" validate:"required,github_username"`
	DisplayName        string `json:"display_name" validate:"max=255"`
	AvatarURL          string `json:"avatar_url" validate:"omitempty,url,max=2048"`
	Bio                string `json:"bio" validate:"max=1024"`
	PublicRepos        int    `json:"public_repos" validate:"gte=0"`
	Followers          int    `json:"followers" validate:"gte=0"`
	Following          int    `json:"following" validate:"gte=0"`
	Location           string `json:"location" validate:"max=255"`
	Company            string `json:"company" validate:"max=255"`
	Blog               string `json:"blog" validate:"max=2048"`
	TwitterUsername    string `json:"twitter_username" validate:"max=64"`
	TotalContributions int    `json:"total_contributions" validate:"gte=0"`
	CurrentStreak      int    `json:"current_streak" validate:"gte=0"`
	LongestStreak      int    `json:"longest_streak" validate:"gte=0"`
	IsPublic           bool   `json:"is_public"`
}

func (req SaveProfileRequest) toProfile() domain.SavedProfile {
	return domain.SavedProfile{
		GitHubUsername:     req.GitHubUsername,
		DisplayName:        req.DisplayName,
		AvatarURL:          req.AvatarURL,
		Bio:                req.Bio,
		PublicRepos:        req.PublicRepos,
		Followers:          req.Followers,
		Following:          req.Following,
		Location:           req.Location,
		Company:            req.Company,
		Blog:               req.Blog,
		TwitterUsername:    req.TwitterUsername,
		TotalContributions: req.TotalContributions,
		CurrentStreak:      req.CurrentStreak,
		LongestStreak:      req.LongestStreak,
		IsPublic:           req.IsPublic,
	}
}

// ownerParam parses the user_id query parameter.
func ownerParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get(ParamUserID)
	if raw == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return uuid.Nil, false
	}
	return id, true
}

// HandleListProfiles lists the profiles an owner saved
// @Summary List saved profiles
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "Owner id (UUID)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {string} string
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [get]
func HandleListProfiles(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerParam(w, r)
		if !ok {
			return
		}

		profiles, err := svc.List(r.Context(), ownerID)
		if err != nil {
			respondServiceError(w, r, "", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(profiles), Data: profiles})
	}
}

// HandleSaveProfile saves or refreshes a profile for an owner. When schemas
// is set the raw body is checked against the saved profile schema first.
// @Summary Save profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SaveProfileRequest true "Profile snapshot"
// @Success 201 {object} domain.SavedProfile
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {string} string
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [post]
func HandleSaveProfile(svc profile.Service, schemas validation.SchemaValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if schemas != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			if err := schemas.ValidateBytes(body, validation.SchemaSavedProfile); err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgValidationFailed, "action", "Save profile", "error", err)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		var req SaveProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save profile"); err != nil {
			return
		}
		ownerID := uuid.MustParse(req.UserID)
		logger.FromContext(r.Context()).Debug(LogMsgProfileSaveRequest, "owner_id", ownerID, "github_username", req.GitHubUsername)

		saved, err := svc.Save(r.Context(), ownerID, req.toProfile())
		if err != nil {
			respondServiceError(w, r, req.GitHubUsername, err)
			return
		}
		respondJSON(w, http.StatusCreated, saved)
	}
}

// HandleDeleteProfile removes one of the owner's saved profiles
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Profile id (UUID)"
// @Param user_id query string true "Owner id (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{id} [delete]
func HandleDeleteProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, ParamID))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidProfileID)
			return
		}
		ownerID, ok := ownerParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), ownerID, id); err != nil {
			respondServiceError(w, r, "", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
	}
}

// HandleLatestProfiles lists recently looked-up public profiles
// @Summary Latest profiles
// @Tags profiles
// @Produce json
// @Param limit query int false "Number of profiles (default 12, max 50)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles/latest [get]
func HandleLatestProfiles(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntParam(r, ParamLimit, profile.DefaultLatestLimit)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitParam)
			return
		}

		profiles, err := svc.Latest(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(profiles), Data: profiles})
	}
}
