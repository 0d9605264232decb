package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/gitfolio/internal/domain"
)

// Repository defines the persistence operations for saved profiles.
// Upserts fill in ID, CreatedAt and UpdatedAt on the passed profile.
type Repository interface {
	UpsertOwned(ctx context.Context, p *domain.SavedProfile) error
	UpsertSnapshot(ctx context.Context, p *domain.SavedProfile) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	ListLatestPublic(ctx context.Context, limit int) ([]domain.SavedProfile, error)
	// DeleteSnapshotsBefore removes ownerless snapshots last refreshed before cutoff.
	DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
