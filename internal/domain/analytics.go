package domain

import "time"

// Analytics is the full dashboard payload for one account and year.
type Analytics struct {
	User         UserProfile          `json:"user"`
	Repositories []Repository         `json:"repositories"`
	Calendar     ContributionCalendar `json:"calendar"`
	Stats        ActivityStats        `json:"stats"`
	Breakdown    ActivityBreakdown    `json:"breakdown"`
	Languages    []LanguageShare      `json:"languages"`
	Achievements ProfileAchievements  `json:"achievements"`
	Warnings     []string             `json:"warnings,omitempty"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// ContributionReport is the calendar view returned by the contributions endpoint.
type ContributionReport struct {
	Calendar  ContributionCalendar `json:"calendar"`
	Stats     ActivityStats        `json:"stats"`
	Breakdown ActivityBreakdown    `json:"breakdown"`
	Warnings  []string             `json:"warnings,omitempty"`
}
