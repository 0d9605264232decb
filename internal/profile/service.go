// Package profile manages saved GitHub profile snapshots: profiles an owner
// saved explicitly, and ownerless snapshots written after public lookups.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/githubapi"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/metrics"
)

// Service defines the saved profile operations
type Service interface {
	Save(ctx context.Context, ownerID uuid.UUID, p domain.SavedProfile) (domain.SavedProfile, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	AutoSave(ctx context.Context, snapshot domain.SavedProfile) (domain.SavedProfile, error)
	Latest(ctx context.Context, limit int) ([]domain.SavedProfile, error)
	PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new profile service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Save stores p under ownerID, replacing an earlier save of the same GitHub account.
func (s *service) Save(ctx context.Context, ownerID uuid.UUID, p domain.SavedProfile) (domain.SavedProfile, error) {
	if ownerID == uuid.Nil {
		return domain.SavedProfile{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgOwnerRequired)
	}
	if err := validate(p); err != nil {
		return domain.SavedProfile{}, err
	}

	owner := ownerID
	p.OwnerID = &owner
	if err := s.repo.UpsertOwned(ctx, &p); err != nil {
		return domain.SavedProfile{}, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgSaveFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgProfileSaved, "owner_id", ownerID, "github_username", p.GitHubUsername, "id", p.ID)
	return p, nil
}

// List returns the owner's saved profiles, newest first.
func (s *service) List(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgOwnerRequired)
	}

	profiles, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgListFailed, err)
	}
	if profiles == nil {
		profiles = []domain.SavedProfile{}
	}
	return profiles, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgOwnerRequired)
	}

	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgDeleteFailed, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, id)
	}

	logger.FromContext(ctx).Info(LogMsgProfileDeleted, "owner_id", ownerID, "id", id)
	return nil
}

// AutoSave upserts the public ownerless snapshot of a looked-up account.
func (s *service) AutoSave(ctx context.Context, snapshot domain.SavedProfile) (domain.SavedProfile, error) {
	if err := validate(snapshot); err != nil {
		metrics.ProfilesAutoSaved.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.SavedProfile{}, err
	}

	snapshot.OwnerID = nil
	snapshot.IsPublic = true
	if err := s.repo.UpsertSnapshot(ctx, &snapshot); err != nil {
		metrics.ProfilesAutoSaved.WithLabelValues(metrics.OutcomeError).Inc()
		return domain.SavedProfile{}, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgSaveFailed, err)
	}

	metrics.ProfilesAutoSaved.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.FromContext(ctx).Debug(LogMsgProfileAutoSaved, "github_username", snapshot.GitHubUsername)
	return snapshot, nil
}

// Latest returns the most recently refreshed public snapshots.
// A limit outside 1..MaxLatestLimit falls back to DefaultLatestLimit.
func (s *service) Latest(ctx context.Context, limit int) ([]domain.SavedProfile, error) {
	if limit <= 0 || limit > MaxLatestLimit {
		limit = DefaultLatestLimit
	}

	profiles, err := s.repo.ListLatestPublic(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgListFailed, err)
	}
	if profiles == nil {
		profiles = []domain.SavedProfile{}
	}
	return profiles, nil
}

// PruneSnapshots deletes ownerless snapshots that no lookup has refreshed
// within retention. Owned profiles are never pruned.
func (s *service) PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgRetentionPositive)
	}

	cutoff := s.now().Add(-retention)
	deleted, err := s.repo.DeleteSnapshotsBefore(ctx, cutoff)
	if err != nil {
		metrics.SnapshotsPruned.WithLabelValues(metrics.OutcomeError).Inc()
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgPruneFailed, err)
	}

	metrics.SnapshotsPruned.WithLabelValues(metrics.OutcomeSuccess).Add(float64(deleted))
	logger.FromContext(ctx).Info(LogMsgSnapshotsPruned, "deleted", deleted, "cutoff", cutoff)
	return deleted, nil
}

func validate(p domain.SavedProfile) error {
	if p.GitHubUsername == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}
	if !githubapi.ValidUsername(p.GitHubUsername) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUsername, p.GitHubUsername)
	}
	if p.PublicRepos < 0 || p.Followers < 0 || p.Following < 0 ||
		p.TotalContributions < 0 || p.CurrentStreak < 0 || p.LongestStreak < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeCount)
	}
	return nil
}
