package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/gitfolio/internal/domain"
)

// MockAnalyticsService mocks the analytics.Service interface
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, username string, year int) (domain.Analytics, error) {
	args := m.Called(ctx, username, year)
	return args.Get(0).(domain.Analytics), args.Error(1)
}

func (m *MockAnalyticsService) GetContributions(ctx context.Context, username string, year int) (domain.ContributionReport, error) {
	args := m.Called(ctx, username, year)
	return args.Get(0).(domain.ContributionReport), args.Error(1)
}

func (m *MockAnalyticsService) GetLanguages(ctx context.Context, username string, topN int) ([]domain.LanguageShare, error) {
	args := m.Called(ctx, username, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LanguageShare), args.Error(1)
}

func (m *MockAnalyticsService) GetRecentActivity(ctx context.Context, username string, page, perPage int) (domain.RecentActivity, error) {
	args := m.Called(ctx, username, page, perPage)
	return args.Get(0).(domain.RecentActivity), args.Error(1)
}

// MockProfileService mocks the profile.Service interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Save(ctx context.Context, ownerID uuid.UUID, p domain.SavedProfile) (domain.SavedProfile, error) {
	args := m.Called(ctx, ownerID, p)
	return args.Get(0).(domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockProfileService) AutoSave(ctx context.Context, snapshot domain.SavedProfile) (domain.SavedProfile, error) {
	args := m.Called(ctx, snapshot)
	return args.Get(0).(domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) Latest(ctx context.Context, limit int) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedProfile), args.Error(1)
}

func (m *MockProfileService) PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// serveRoute mounts h on a chi router under pattern so URL params resolve.
func serveRoute(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
