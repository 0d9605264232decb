package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedProfile is a persisted snapshot of a GitHub profile.
// OwnerID is nil for profiles saved automatically after a public lookup.
type SavedProfile struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            *uuid.UUID `json:"owner_id,omitempty"`
	GitHubUsername     string     `json:"github_username"`
	DisplayName        string     `json:"display_name"`
	AvatarURL          string     `json:"avatar_url"`
	Bio                string     `json:"bio"`
	PublicRepos        int        `json:"public_repos"`
	Followers          int        `json:"followers"`
	Following          int        `json:"following"`
	Location           string     `json:"location"`
	Company            string     `json:"company"`
	Blog               string     `json:"blog"`
	TwitterUsername    string     `json:"twitter_username"`
	TotalContributions int        `json:"total_contributions"`
	CurrentStreak      int        `json:"current_streak"`
	LongestStreak      int        `json:"longest_streak"`
	IsPublic           bool       `json:"is_public"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NewSavedProfile builds a snapshot from a fetched profile and its stats.
func NewSavedProfile(p UserProfile, s ActivityStats) SavedProfile {
	return SavedProfile{
		GitHubUsername:     p.Login,
		DisplayName:        p.Name,
		AvatarURL:          p.AvatarURL,
		Bio:                p.Bio,
		PublicRepos:        p.PublicRepos,
		Followers:          p.Followers,
		Following:          p.Following,
		Location:           p.Location,
		Company:            p.Company,
		Blog:               p.Blog,
		TwitterUsername:    p.TwitterUsername,
		TotalContributions: s.TotalContributions,
		CurrentStreak:      s.CurrentStreak,
		LongestStreak:      s.LongestStreak,
	}
}
