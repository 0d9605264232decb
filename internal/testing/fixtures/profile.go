package fixtures

import (
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

// Profile returns a fully filled profile created on createdAt.
func Profile(login string, createdAt time.Time) domain.UserProfile {
	return domain.UserProfile{
		Login:       login,
		Name:        "The Octocat",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		HTMLURL:     "https://github.com/" + login,
		Bio:         "Mascot",
		Location:    "San Francisco",
		Company:     "@github",
		Blog:        "https://github.blog",
		PublicRepos: 8,
		PublicGists: 8,
		Followers:   20,
		Following:   9,
		CreatedAt:   createdAt,
	}
}

// Repos builds repositories with the given star counts.
func Repos(stars ...int) []domain.Repository {
	out := make([]domain.Repository, len(stars))
	for i, s := range stars {
		out[i] = domain.Repository{
			Name:            "repo" + string(rune('a'+i)),
			Language:        "Go",
			Size:            100,
			StargazersCount: s,
		}
	}
	return out
}
