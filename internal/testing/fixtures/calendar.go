// Package fixtures builds contribution calendars and profiles for tests.
package fixtures

import (
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

// Date parses a YYYY-MM-DD date in UTC and panics on bad input.
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Calendar lays counts out day by day from start, seven days per week.
// Levels follow GitHub's bucketing of the mock data: 1-3, 4-6, 7-10, 11+.
func Calendar(start string, counts ...int) domain.ContributionCalendar {
	day := Date(start)
	var weeks []domain.ContributionWeek
	var current domain.ContributionWeek
	total := 0
	for _, c := range counts {
		current.Days = append(current.Days, domain.ContributionDay{
			Date:  day.Format("2006-01-02"),
			Count: c,
			Level: Level(c),
		})
		total += c
		day = day.AddDate(0, 0, 1)
		if len(current.Days) == 7 {
			weeks = append(weeks, current)
			current = domain.ContributionWeek{}
		}
	}
	if len(current.Days) > 0 {
		weeks = append(weeks, current)
	}
	return domain.ContributionCalendar{
		Weeks:              weeks,
		TotalContributions: total,
		QueryYear:          Date(start).Year(),
		User:               domain.UserRef{Login: "octocat"},
	}
}

// YearCalendar covers every day of year, with counts chosen by fn.
func YearCalendar(year int, fn func(time.Time) int) domain.ContributionCalendar {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	var counts []int
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		counts = append(counts, fn(d))
	}
	return Calendar(start.Format("2006-01-02"), counts...)
}

// Level mirrors the contribution level bucketing used for generated data.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}

// Repeat returns n copies of v.
func Repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Concat joins count runs.
func Concat(runs ...[]int) []int {
	var out []int
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}
