package domain

import "time"

// AchievementCategory groups tiers that are mutually exclusive.
type AchievementCategory string

const (
	CategoryProfile      AchievementCategory = "profile"
	CategoryRepository   AchievementCategory = "repository"
	CategoryContribution AchievementCategory = "contribution"
	CategoryStreak       AchievementCategory = "streak"
	CategorySocial       AchievementCategory = "social"
	CategoryMilestone    AchievementCategory = "milestone"
)

// Achievement is an unlocked tier. It is derived on every evaluation and never stored.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    AchievementCategory `json:"category"`
	Description string              `json:"description"`
	Threshold   int                 `json:"threshold"`
	Value       int                 `json:"value"`
	UnlockedAt  time.Time           `json:"unlocked_at"`
}

// ProfileAchievements is the result of evaluating a profile snapshot.
type ProfileAchievements struct {
	ProfileCompletion int           `json:"profile_completion"`
	Achievements      []Achievement `json:"achievements"`
	Badges            []string      `json:"badges"`
	SpecialBadges     []string      `json:"special_badges"`
}
