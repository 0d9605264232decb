package achievement

import "github.com/osse101/gitfolio/internal/domain"

// Tier is one rung of a category ladder.
type Tier struct {
	ID          string
	Name        string
	Threshold   int
	Description string
}

// Ladder is the ordered tier list of one category, highest threshold first.
type Ladder struct {
	Category domain.AchievementCategory
	Tiers    []Tier
}

// getLadders returns the tier configuration.
// Only the first tier whose threshold is met unlocks in each category.
func getLadders() []Ladder {
	return []Ladder{
		{
			Category: domain.CategoryProfile,
			Tiers: []Tier{
				{ID: "profile-master", Name: "Profile Master", Threshold: 100, Description: "Every profile field filled in"},
				{ID: "profile-expert", Name: "Profile Expert", Threshold: 80, Description: "Profile at least 80% complete"},
				{ID: "profile-enthusiast", Name: "Profile Enthusiast", Threshold: 60, Description: "Profile at least 60% complete"},
			},
		},
		{
			Category: domain.CategoryRepository,
			Tiers: []Tier{
				{ID: "repository-legend", Name: "Repository Legend", Threshold: 100, Description: "100 public repositories"},
				{ID: "repository-expert", Name: "Repository Expert", Threshold: 50, Description: "50 public repositories"},
				{ID: "repository-enthusiast", Name: "Repository Enthusiast", Threshold: 10, Description: "10 public repositories"},
				{ID: "repository-first", Name: "First Repository", Threshold: 1, Description: "Published a first repository"},
			},
		},
		{
			Category: domain.CategoryContribution,
			Tiers: []Tier{
				{ID: "contribution-legend", Name: "Contribution Legend", Threshold: 10000, Description: "10,000 contributions"},
				{ID: "contribution-master", Name: "Contribution Master", Threshold: 5000, Description: "5,000 contributions"},
				{ID: "contribution-expert", Name: "Contribution Expert", Threshold: 1000, Description: "1,000 contributions"},
				{ID: "contribution-enthusiast", Name: "Contribution Enthusiast", Threshold: 100, Description: "100 contributions"},
			},
		},
		{
			Category: domain.CategoryStreak,
			Tiers: []Tier{
				{ID: "streak-legend", Name: "Streak Legend", Threshold: 365, Description: "Contributed every day for a year"},
				{ID: "streak-master", Name: "Streak Master", Threshold: 100, Description: "100 day streak"},
				{ID: "streak-expert", Name: "Streak Expert", Threshold: 30, Description: "30 day streak"},
				{ID: "streak-enthusiast", Name: "Streak Enthusiast", Threshold: 7, Description: "7 day streak"},
			},
		},
		{
			Category: domain.CategorySocial,
			Tiers: []Tier{
				{ID: "social-legend", Name: "Social Legend", Threshold: 1000, Description: "1,000 followers"},
				{ID: "social-expert", Name: "Social Expert", Threshold: 500, Description: "500 followers"},
				{ID: "social-enthusiast", Name: "Social Enthusiast", Threshold: 100, Description: "100 followers"},
				{ID: "social-starter", Name: "Social Starter", Threshold: 10, Description: "10 followers"},
			},
		},
		{
			Category: domain.CategoryMilestone,
			Tiers: []Tier{
				{ID: "milestone-veteran", Name: "Veteran", Threshold: 10, Description: "Ten years on GitHub"},
				{ID: "milestone-experienced", Name: "Experienced", Threshold: 5, Description: "Five years on GitHub"},
				{ID: "milestone-established", Name: "Established", Threshold: 2, Description: "Two years on GitHub"},
				{ID: "milestone-one-year", Name: "One Year Strong", Threshold: 1, Description: "One year on GitHub"},
			},
		},
	}
}

// Catalog returns a copy of every ladder for display.
func Catalog() []Ladder {
	return getLadders()
}
