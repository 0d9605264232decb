// Package stats derives activity statistics from a contribution calendar.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

const dateLayout = "2006-01-02"

type datedDay struct {
	domain.ContributionDay
	t time.Time
}

// flatten returns every dated day in ascending date order. Days whose
// date does not parse cannot be placed on the timeline and are skipped.
func flatten(cal domain.ContributionCalendar) []datedDay {
	var days []datedDay
	for _, w := range cal.Weeks {
		for _, d := range w.Days {
			t, err := time.Parse(dateLayout, d.Date)
			if err != nil {
				continue
			}
			days = append(days, datedDay{ContributionDay: d, t: t})
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].t.Before(days[j].t) })
	return days
}

// Compute derives ActivityStats for cal.
//
// targetYear selects the current-streak rule: 0 or the year of now (or later)
// counts back from the most recent day, any earlier year yields 0. Days dated
// after now are ignored for the current streak. Placeholder days count as
// zero for streaks but are left out of the daily average. A date that
// appears more than once counts once for streaks, with its highest count.
func Compute(cal domain.ContributionCalendar, targetYear int, now time.Time) (domain.ActivityStats, error) {
	if len(cal.Weeks) == 0 {
		return domain.ActivityStats{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoWeeks)
	}
	days := flatten(cal)
	if len(days) == 0 {
		return domain.ActivityStats{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoDays)
	}

	total, counted := 0, 0
	for _, d := range days {
		total += d.Count
		if !d.Placeholder {
			counted++
		}
	}

	var avg float64
	if counted > 0 {
		avg = float64(total) / float64(counted)
	}

	line := timeline(days)
	return domain.ActivityStats{
		LongestStreak:         longestStreak(line),
		CurrentStreak:         currentStreak(line, targetYear, now),
		TotalContributions:    total,
		AveragePerDay:         avg,
		MostActiveDay:         mostActive(days, func(t time.Time) string { return t.Weekday().String() }),
		MostActiveMonth:       mostActive(days, func(t time.Time) string { return t.Month().String() }),
		ContributionsLastYear: total,
	}, nil
}

// timeline collapses repeated dates to a single day holding the highest
// count seen for that date, so streaks do not depend on storage order.
// days must already be sorted.
func timeline(days []datedDay) []datedDay {
	out := make([]datedDay, 0, len(days))
	for _, d := range days {
		if n := len(out); n > 0 && out[n-1].t.Equal(d.t) {
			if d.Count > out[n-1].Count {
				out[n-1] = d
			}
			continue
		}
		out = append(out, d)
	}
	return out
}

// longestStreak is the longest run of consecutive calendar days with a
// positive count. A zero day or a missing date resets the run.
func longestStreak(days []datedDay) int {
	longest, run := 0, 0
	for i, d := range days {
		if d.Count <= 0 {
			run = 0
			continue
		}
		if run > 0 && d.t.Sub(days[i-1].t) > 24*time.Hour {
			run = 0
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func currentStreak(days []datedDay, targetYear int, now time.Time) int {
	now = now.UTC()
	if targetYear > 0 && targetYear < now.Year() {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	streak := 0
	var prev time.Time
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		if d.t.After(today) {
			continue
		}
		if d.Count <= 0 {
			break
		}
		if streak > 0 && prev.Sub(d.t) > 24*time.Hour {
			break
		}
		streak++
		prev = d.t
	}
	return streak
}

// mostActive buckets counts by key and returns the key with the highest
// total. Ties go to the key encountered first in chronological order.
func mostActive(days []datedDay, key func(time.Time) string) string {
	totals := make(map[string]int)
	var order []string
	for _, d := range days {
		k := key(d.t)
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] += d.Count
	}

	best := ""
	bestTotal := -1
	for _, k := range order {
		if totals[k] > bestTotal {
			best, bestTotal = k, totals[k]
		}
	}
	return best
}
