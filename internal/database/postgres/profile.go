package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/profile"
)

const profileColumns = `id, user_id, github_username, display_name, avatar_url, bio,
	public_repos, followers, following, location, company, blog, twitter_username,
	total_contributions, current_streak, longest_streak, is_public, created_at, updated_at`

const upsertOwnedProfileSQL = `
INSERT INTO profiles (user_id, github_username, display_name, avatar_url, bio,
	public_repos, followers, following, location, company, blog, twitter_username,
	total_contributions, current_streak, longest_streak, is_public)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (user_id, (lower(github_username))) WHERE user_id IS NOT NULL
DO UPDATE SET
	github_username = EXCLUDED.github_username,
	display_name = EXCLUDED.display_name,
	avatar_url = EXCLUDED.avatar_url,
	bio = EXCLUDED.bio,
	public_repos = EXCLUDED.public_repos,
	followers = EXCLUDED.followers,
	following = EXCLUDED.following,
	location = EXCLUDED.location,
	company = EXCLUDED.company,
	blog = EXCLUDED.blog,
	twitter_username = EXCLUDED.twitter_username,
	total_contributions = EXCLUDED.total_contributions,
	current_streak = EXCLUDED.current_streak,
	longest_streak = EXCLUDED.longest_streak,
	is_public = EXCLUDED.is_public,
	updated_at = NOW()
RETURNING id, created_at, updated_at`

const upsertSnapshotSQL = `
INSERT INTO profiles (user_id, github_username, display_name, avatar_url, bio,
	public_repos, followers, following, location, company, blog, twitter_username,
	total_contributions, current_streak, longest_streak, is_public)
VALUES (NULL, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, TRUE)
ON CONFLICT ((lower(github_username))) WHERE user_id IS NULL
DO UPDATE SET
	github_username = EXCLUDED.github_username,
	display_name = EXCLUDED.display_name,
	avatar_url = EXCLUDED.avatar_url,
	bio = EXCLUDED.bio,
	public_repos = EXCLUDED.public_repos,
	followers = EXCLUDED.followers,
	following = EXCLUDED.following,
	location = EXCLUDED.location,
	company = EXCLUDED.company,
	blog = EXCLUDED.blog,
	twitter_username = EXCLUDED.twitter_username,
	total_contributions = EXCLUDED.total_contributions,
	current_streak = EXCLUDED.current_streak,
	longest_streak = EXCLUDED.longest_streak,
	updated_at = NOW()
RETURNING id, created_at, updated_at`

// ProfileRepository implements profile.Repository for PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) profile.Repository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) UpsertOwned(ctx context.Context, p *domain.SavedProfile) error {
	if p.OwnerID == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, profile.ErrMsgOwnerRequired)
	}
	err := r.pool.QueryRow(ctx, upsertOwnedProfileSQL,
		*p.OwnerID, p.GitHubUsername, p.DisplayName, p.AvatarURL, p.Bio,
		p.PublicRepos, p.Followers, p.Following, p.Location, p.Company, p.Blog, p.TwitterUsername,
		p.TotalContributions, p.CurrentStreak, p.LongestStreak, p.IsPublic,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) UpsertSnapshot(ctx context.Context, p *domain.SavedProfile) error {
	err := r.pool.QueryRow(ctx, upsertSnapshotSQL,
		p.GitHubUsername, p.DisplayName, p.AvatarURL, p.Bio,
		p.PublicRepos, p.Followers, p.Following, p.Location, p.Company, p.Blog, p.TwitterUsername,
		p.TotalContributions, p.CurrentStreak, p.LongestStreak,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile snapshot: %w", err)
	}
	p.OwnerID = nil
	p.IsPublic = true
	return nil
}

// ListByOwner returns the owner's profiles, newest first
func (r *ProfileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (r *ProfileRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListLatestPublic returns the most recently refreshed ownerless public snapshots
func (r *ProfileRepository) ListLatestPublic(ctx context.Context, limit int) ([]domain.SavedProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles
		WHERE user_id IS NULL AND is_public
		ORDER BY updated_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest profiles: %w", err)
	}
	return collectProfiles(rows)
}

// DeleteSnapshotsBefore removes ownerless snapshots not refreshed since cutoff
func (r *ProfileRepository) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id IS NULL AND updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectProfiles(rows pgx.Rows) ([]domain.SavedProfile, error) {
	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavedProfile, error) {
		var p domain.SavedProfile
		var owner *uuid.UUID
		err := row.Scan(&p.ID, &owner, &p.GitHubUsername, &p.DisplayName, &p.AvatarURL, &p.Bio,
			&p.PublicRepos, &p.Followers, &p.Following, &p.Location, &p.Company, &p.Blog, &p.TwitterUsername,
			&p.TotalContributions, &p.CurrentStreak, &p.LongestStreak, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
		p.OwnerID = owner
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return profiles, nil
}
