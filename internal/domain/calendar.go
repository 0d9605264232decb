package domain

// ContributionDay is a single day of the contribution calendar.
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
	Level int    `json:"level"` // 0-4 heatmap bucket
	// Placeholder marks a malformed day that was zero-filled to keep the week layout intact.
	Placeholder bool `json:"placeholder,omitempty"`
}

// ContributionWeek is an ordered run of days, nominally seven.
type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// UserRef identifies the account a calendar belongs to.
type UserRef struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ContributionCalendar is built fresh for every fetch and never mutated afterwards.
type ContributionCalendar struct {
	Weeks              []ContributionWeek `json:"weeks"`
	TotalContributions int                `json:"total_contributions"`
	QueryYear          int                `json:"query_year"`
	User               UserRef            `json:"user"`
}

// Days returns every day of the calendar in storage order.
func (c ContributionCalendar) Days() []ContributionDay {
	n := 0
	for _, w := range c.Weeks {
		n += len(w.Days)
	}
	days := make([]ContributionDay, 0, n)
	for _, w := range c.Weeks {
		days = append(days, w.Days...)
	}
	return days
}

// ActivityStats is the derived statistics record for one calendar.
type ActivityStats struct {
	LongestStreak         int     `json:"longest_streak"`
	CurrentStreak         int     `json:"current_streak"`
	TotalContributions    int     `json:"total_contributions"`
	AveragePerDay         float64 `json:"average_per_day"`
	MostActiveDay         string  `json:"most_active_day"`
	MostActiveMonth       string  `json:"most_active_month"`
	ContributionsLastYear int     `json:"contributions_last_year"`
}

// WeekdayActivity aggregates contributions falling on one weekday.
type WeekdayActivity struct {
	Day     string  `json:"day"`
	Total   int     `json:"total"`
	Days    int     `json:"days"`
	Average float64 `json:"average"`
}

// WeeklyTotal is one point of the weekly timeline.
type WeeklyTotal struct {
	WeekStart string `json:"week_start"`
	Total     int    `json:"total"`
}

// ActivityBreakdown holds the chart series derived from a calendar.
type ActivityBreakdown struct {
	Weekdays           []WeekdayActivity `json:"weekdays"`
	MostActiveWeekday  string            `json:"most_active_weekday"`
	LeastActiveWeekday string            `json:"least_active_weekday"`
	Weekly             []WeeklyTotal     `json:"weekly"`
}
