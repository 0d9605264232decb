package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/gitfolio/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertOwned(ctx context.Context, p *domain.SavedProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) UpsertSnapshot(ctx context.Context, p *domain.SavedProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, ownerID)
	profiles, _ := args.Get(0).([]domain.SavedProfile)
	return profiles, args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListLatestPublic(ctx context.Context, limit int) ([]domain.SavedProfile, error) {
	args := m.Called(ctx, limit)
	profiles, _ := args.Get(0).([]domain.SavedProfile)
	return profiles, args.Error(1)
}

func (m *MockRepository) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
