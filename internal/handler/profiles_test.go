package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/profile"
	"github.com/osse101/gitfolio/internal/validation"
)

var testOwner = uuid.MustParse("5b0c2a4e-3a6f-4a55-9d39-0c1f2f0f6c11")

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHandleSaveProfile(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Save", mock.Anything, testOwner, mock.MatchedBy(func(p domain.SavedProfile) bool {
			return p.GitHubUsername == "octocat" && p.Followers == 20 && p.IsPublic
		})).Return(domain.SavedProfile{ID: uuid.New(), GitHubUsername: "octocat", OwnerID: &testOwner}, nil)

		body := jsonBody(t, SaveProfileRequest{
			UserID:         testOwner.String(),
			GitHubUsername: "octocat",
			Followers:      20,
			IsPublic:       true,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", body)
		w := httptest.NewRecorder()
		HandleSaveProfile(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"github_username":"octocat"`)
		svc.AssertExpectations(t)
	})

	tests := []struct {
		name        string
		body        interface{}
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing user id",
			body:        SaveProfileRequest{GitHubUsername: "octocat"},
			wantField:   "user_id",
			wantMessage: "This field is required",
		},
		{
			name:        "bad username",
			body:        SaveProfileRequest{UserID: testOwner.String(), GitHubUsername: "bad--name"},
			wantField:   "github_username",
			wantMessage: ErrMsgInvalidUsernameFormat,
		},
		{
			name:        "negative followers",
			body:        SaveProfileRequest{UserID: testOwner.String(), GitHubUsername: "octocat", Followers: -1},
			wantField:   "followers",
			wantMessage: "Must be greater than or equal to 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProfileService{}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", jsonBody(t, tt.body))
			w := httptest.NewRecorder()
			HandleSaveProfile(svc, nil).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Fields[tt.wantField])
			svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := &MockProfileService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		HandleSaveProfile(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Database Error", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Save", mock.Anything, testOwner, mock.Anything).
			Return(domain.SavedProfile{}, fmt.Errorf("%w: boom", domain.ErrDatabaseError))

		body := jsonBody(t, SaveProfileRequest{UserID: testOwner.String(), GitHubUsername: "octocat"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", body)
		w := httptest.NewRecorder()
		HandleSaveProfile(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestHandleListProfiles(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("List", mock.Anything, testOwner).Return([]domain.SavedProfile{{GitHubUsername: "octocat"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles?user_id="+testOwner.String(), nil)
		w := httptest.NewRecorder()
		HandleListProfiles(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
	})

	t.Run("Missing Owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
		w := httptest.NewRecorder()
		HandleListProfiles(&MockProfileService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingUserID)
	})

	t.Run("Bad Owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles?user_id=abc", nil)
		w := httptest.NewRecorder()
		HandleListProfiles(&MockProfileService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidUserID)
	})
}

func TestHandleDeleteProfile(t *testing.T) {
	id := uuid.MustParse("0b7d7f43-1b7e-4a4a-9f0e-8f7b6b0c9a01")
	pattern := "/api/v1/profiles/{id}"

	t.Run("Success", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Delete", mock.Anything, testOwner, id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/"+id.String()+"?user_id="+testOwner.String(), nil)
		w := serveRoute(http.MethodDelete, pattern, HandleDeleteProfile(svc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgProfileDeleted)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Delete", mock.Anything, testOwner, id).Return(fmt.Errorf("%w: %s", domain.ErrProfileNotFound, id))

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/"+id.String()+"?user_id="+testOwner.String(), nil)
		w := serveRoute(http.MethodDelete, pattern, HandleDeleteProfile(svc), req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgProfileNotFound)
	})

	t.Run("Bad Id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/nope?user_id="+testOwner.String(), nil)
		w := serveRoute(http.MethodDelete, pattern, HandleDeleteProfile(&MockProfileService{}), req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidProfileID)
	})
}

func TestHandleLatestProfiles(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Latest", mock.Anything, profile.DefaultLatestLimit).Return([]domain.SavedProfile{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/latest", nil)
		w := httptest.NewRecorder()
		HandleLatestProfiles(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":0,"data":[]}`, w.Body.String())
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Latest", mock.Anything, 3).Return([]domain.SavedProfile{{GitHubUsername: "a"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/latest?limit=3", nil)
		w := httptest.NewRecorder()
		HandleLatestProfiles(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/latest?limit=many", nil)
		w := httptest.NewRecorder()
		HandleLatestProfiles(&MockProfileService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleSaveProfile_Schema(t *testing.T) {
	InitValidator()
	schemas := validation.NewSchemaValidator()

	t.Run("Rejected By Schema", func(t *testing.T) {
		svc := &MockProfileService{}
		body := bytes.NewBufferString(`{"user_id":"` + testOwner.String() + `","github_username":"octocat","followers":"many"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", body)
		w := httptest.NewRecorder()
		HandleSaveProfile(svc, schemas).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestSummary)
		svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Accepted", func(t *testing.T) {
		svc := &MockProfileService{}
		svc.On("Save", mock.Anything, testOwner, mock.Anything).Return(domain.SavedProfile{GitHubUsername: "octocat"}, nil)

		body := jsonBody(t, SaveProfileRequest{UserID: testOwner.String(), GitHubUsername: "octocat"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", body)
		w := httptest.NewRecorder()
		HandleSaveProfile(svc, schemas).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})
}
