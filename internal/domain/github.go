package domain

import "time"

// UserProfile is the public GitHub profile of an account.
type UserProfile struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	HTMLURL         string    `json:"html_url"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	Company         string    `json:"company"`
	Blog            string    `json:"blog"`
	TwitterUsername string    `json:"twitter_username"`
	PublicRepos     int       `json:"public_repos"`
	PublicGists     int       `json:"public_gists"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"created_at"`
}

// Repository is the subset of repository metadata used for analytics.
type Repository struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	Size            int64     `json:"size"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Fork            bool      `json:"fork"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RepositoryLanguages maps repository name to language byte counts.
type RepositoryLanguages map[string]map[string]int64

// LanguageShare is one entry of a ranked language distribution.
type LanguageShare struct {
	Language   string  `json:"language"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// ActivityEvent is one entry of a user's public event feed.
type ActivityEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentActivity is a page of a user's public events.
type RecentActivity struct {
	Events  []ActivityEvent `json:"events"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	HasMore bool            `json:"has_more"`
}
