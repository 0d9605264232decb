package stats

import (
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

// weekdayOrder lists weekdays Monday first, as the weekly chart shows them.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Breakdown derives the weekday averages and weekly timeline for cal.
func Breakdown(cal domain.ContributionCalendar, now time.Time) domain.ActivityBreakdown {
	weekdays := WeekdayAverages(cal)

	out := domain.ActivityBreakdown{
		Weekdays: weekdays,
		Weekly:   WeeklyTotals(cal, now),
	}

	most, least := -1, -1
	for i, w := range weekdays {
		if w.Days == 0 {
			continue
		}
		if most < 0 || w.Average > weekdays[most].Average {
			most = i
		}
		if least < 0 || w.Average < weekdays[least].Average {
			least = i
		}
	}
	if most >= 0 {
		out.MostActiveWeekday = weekdays[most].Day
		out.LeastActiveWeekday = weekdays[least].Day
	}
	return out
}

// WeekdayAverages returns total, day count and average per weekday,
// Monday first. Placeholder days are not counted.
func WeekdayAverages(cal domain.ContributionCalendar) []domain.WeekdayActivity {
	totals := make(map[time.Weekday]int, 7)
	counts := make(map[time.Weekday]int, 7)
	for _, d := range flatten(cal) {
		if d.Placeholder {
			continue
		}
		wd := d.t.Weekday()
		totals[wd] += d.Count
		counts[wd]++
	}

	out := make([]domain.WeekdayActivity, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		a := domain.WeekdayActivity{Day: wd.String(), Total: totals[wd], Days: counts[wd]}
		if a.Days > 0 {
			a.Average = float64(a.Total) / float64(a.Days)
		}
		out = append(out, a)
	}
	return out
}

// WeeklyTotals sums each week and labels it with its first dated day.
// Weeks that start after now are left out.
func WeeklyTotals(cal domain.ContributionCalendar, now time.Time) []domain.WeeklyTotal {
	now = now.UTC()
	var out []domain.WeeklyTotal
	for _, w := range cal.Weeks {
		if len(w.Days) == 0 {
			continue
		}
		start := ""
		for _, d := range w.Days {
			if d.Date != "" {
				start = d.Date
				break
			}
		}
		if t, err := time.Parse(dateLayout, start); err == nil && t.After(now) {
			continue
		}
		total := 0
		for _, d := range w.Days {
			total += d.Count
		}
		out = append(out, domain.WeeklyTotal{WeekStart: start, Total: total})
	}
	return out
}
