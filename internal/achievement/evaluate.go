// Package achievement evaluates tiered achievements and special badges for a profile snapshot.
package achievement

import (
	"math"
	"strings"
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

// Evaluate maps a profile, its stats and repositories onto the achievement
// ladders. Each category unlocks at most its highest reached tier; special
// badges are independent of each other.
func Evaluate(profile domain.UserProfile, s domain.ActivityStats, repos []domain.Repository, now time.Time) domain.ProfileAchievements {
	completion := ProfileCompletion(profile)

	values := map[domain.AchievementCategory]int{
		domain.CategoryProfile:      completion,
		domain.CategoryRepository:   profile.PublicRepos,
		domain.CategoryContribution: s.TotalContributions,
		domain.CategoryStreak:       s.LongestStreak,
		domain.CategorySocial:       profile.Followers,
		domain.CategoryMilestone:    AccountYears(profile.CreatedAt, now),
	}

	result := domain.ProfileAchievements{
		ProfileCompletion: completion,
		Achievements:      make([]domain.Achievement, 0, len(values)),
		Badges:            make([]string, 0, len(values)),
	}

	for _, ladder := range getLadders() {
		value := values[ladder.Category]
		tier, ok := highestTier(ladder, value)
		if !ok {
			continue
		}
		result.Achievements = append(result.Achievements, domain.Achievement{
			ID:          tier.ID,
			Name:        tier.Name,
			Category:    ladder.Category,
			Description: tier.Description,
			Threshold:   tier.Threshold,
			Value:       value,
			UnlockedAt:  now,
		})
		result.Badges = append(result.Badges, tier.Name)
	}

	result.SpecialBadges = SpecialBadges(profile, s, repos)
	return result
}

// highestTier returns the first tier met; ladders are ordered highest first.
func highestTier(l Ladder, value int) (Tier, bool) {
	for _, t := range l.Tiers {
		if value >= t.Threshold {
			return t, true
		}
	}
	return Tier{}, false
}

// ProfileCompletion is the share of filled optional profile fields, 0-100.
func ProfileCompletion(p domain.UserProfile) int {
	filled := 0
	for _, f := range []string{p.Name, p.Bio, p.Location, p.Company, p.Blog} {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / ProfileFieldCount * 100))
}

// AccountYears counts full years between createdAt and now.
func AccountYears(createdAt, now time.Time) int {
	if createdAt.IsZero() || !now.After(createdAt) {
		return 0
	}
	createdAt, now = createdAt.UTC(), now.UTC()
	years := now.Year() - createdAt.Year()
	if now.Month() < createdAt.Month() ||
		(now.Month() == createdAt.Month() && now.Day() < createdAt.Day()) {
		years--
	}
	return years
}

// SpecialBadges returns every additive badge the snapshot qualifies for.
func SpecialBadges(profile domain.UserProfile, s domain.ActivityStats, repos []domain.Repository) []string {
	badges := make([]string, 0)

	if s.AveragePerDay >= HighAverageThreshold {
		badges = append(badges, BadgeHighAverage)
	}

	var (
		starred, forked bool
		totalSize       int64
		maxStars        int
	)
	for _, r := range repos {
		if r.StargazersCount > 0 {
			starred = true
		}
		if r.ForksCount > 0 {
			forked = true
		}
		totalSize += r.Size
		if r.StargazersCount > maxStars {
			maxStars = r.StargazersCount
		}
	}
	if starred {
		badges = append(badges, BadgeStarred)
	}
	if forked {
		badges = append(badges, BadgeForked)
	}
	if totalSize > LargeCodeThreshold {
		badges = append(badges, BadgeLargeCode)
	}

	// Only the most-starred repository is considered.
	switch {
	case maxStars >= PopularStarThreshold:
		badges = append(badges, BadgePopular)
	case maxStars >= RisingStarThreshold:
		badges = append(badges, BadgeRisingStar)
	}

	if s.CurrentStreak >= ActiveStreakThreshold {
		badges = append(badges, BadgeOnFire)
	}
	if profile.PublicGists > 0 {
		badges = append(badges, BadgeGistAuthor)
	}
	return badges
}
