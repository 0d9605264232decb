package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/metrics"
)

// Warning is a non-fatal anomaly found in a calendar.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report summarizes what validation changed or noticed.
type Report struct {
	Warnings      []Warning `json:"warnings"`
	DroppedWeeks  int       `json:"dropped_weeks"`
	Placeholders  int       `json:"placeholders"`
	LevelsDerived bool      `json:"levels_derived"`
}

// Messages returns the warning messages in the order they were raised.
func (r *Report) Messages() []string {
	if r == nil || len(r.Warnings) == 0 {
		return nil
	}
	out := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.Message
	}
	return out
}

func (r *Report) warn(code, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Validate normalizes a fetched calendar before aggregation.
//
// Only the absence of data is fatal: a calendar without weeks or without a
// single valid day fails with domain.ErrMalformedCalendar. Every other anomaly
// is recorded in the report, logged and counted, and the best-effort
// normalized calendar is returned. The input is not modified.
func Validate(ctx context.Context, cal domain.ContributionCalendar) (domain.ContributionCalendar, *Report, error) {
	log := logger.FromContext(ctx)
	report := &Report{}

	if len(cal.Weeks) == 0 {
		log.Warn(LogMsgCalendarRejected, "user", cal.User.Login, "reason", ErrMsgNoWeeks)
		return domain.ContributionCalendar{}, report, fmt.Errorf("%w: %s", domain.ErrMalformedCalendar, ErrMsgNoWeeks)
	}

	weeks := make([]domain.ContributionWeek, 0, len(cal.Weeks))
	validDays := 0
	for _, w := range cal.Weeks {
		if len(w.Days) == 0 {
			report.DroppedWeeks++
			continue
		}
		days := make([]domain.ContributionDay, len(w.Days))
		for i, d := range w.Days {
			if _, err := time.Parse(DateLayout, d.Date); err != nil || d.Count < 0 || d.Placeholder {
				report.warn(WarnMalformedDay, "malformed day %q with count %d replaced by placeholder", d.Date, d.Count)
				days[i] = domain.ContributionDay{Date: d.Date, Placeholder: true}
				report.Placeholders++
				continue
			}
			days[i] = d
			validDays++
		}
		weeks = append(weeks, domain.ContributionWeek{Days: days})
	}
	if report.DroppedWeeks > 0 {
		report.warn(WarnEmptyWeek, "dropped %d empty weeks", report.DroppedWeeks)
	}

	if len(weeks) == 0 {
		log.Warn(LogMsgCalendarRejected, "user", cal.User.Login, "reason", ErrMsgNoWeeks)
		return domain.ContributionCalendar{}, report, fmt.Errorf("%w: %s", domain.ErrMalformedCalendar, ErrMsgNoWeeks)
	}
	if validDays == 0 {
		log.Warn(LogMsgCalendarRejected, "user", cal.User.Login, "reason", ErrMsgNoValidDays)
		return domain.ContributionCalendar{}, report, fmt.Errorf("%w: %s", domain.ErrMalformedCalendar, ErrMsgNoValidDays)
	}

	inferPlaceholderDates(weeks)

	for i, w := range weeks {
		if len(w.Days) == DaysPerWeek {
			continue
		}
		if i == 0 || i == len(weeks)-1 {
			log.Debug(LogMsgPartialEdgeWeek, "week", i, "days", len(w.Days))
			continue
		}
		report.warn(WarnWeekLength, "week %d has %d days", i, len(w.Days))
	}

	checkCounts(weeks, cal.TotalContributions, report)
	checkDates(weeks, report)

	if !levelsConsistent(weeks) {
		weeks = DeriveLevels(weeks)
		report.LevelsDerived = true
		report.warn(WarnLevelsDerived, "contribution levels missing or inconsistent, derived locally")
	}

	for _, w := range report.Warnings {
		log.Warn(LogMsgCalendarWarning, "user", cal.User.Login, "code", w.Code, "detail", w.Message)
		metrics.CalendarWarnings.WithLabelValues(w.Code).Inc()
	}
	log.Debug(LogMsgCalendarValidated, "user", cal.User.Login, "weeks", len(weeks), "warnings", len(report.Warnings))

	return domain.ContributionCalendar{
		Weeks:              weeks,
		TotalContributions: cal.TotalContributions,
		QueryYear:          cal.QueryYear,
		User:               cal.User,
	}, report, nil
}

// inferPlaceholderDates gives undated placeholders a date. A placeholder
// whose own date parses keeps it. Otherwise the date is inferred from the
// nearest valid days in storage order, but only where those days run in
// ascending consecutive order and the inferred date is not already taken.
// A placeholder that cannot be placed is left with an empty date.
func inferPlaceholderDates(weeks []domain.ContributionWeek) {
	var refs []*domain.ContributionDay
	for wi := range weeks {
		for di := range weeks[wi].Days {
			refs = append(refs, &weeks[wi].Days[di])
		}
	}

	taken := make(map[string]bool, len(refs))
	for _, d := range refs {
		if _, err := time.Parse(DateLayout, d.Date); err == nil {
			taken[d.Date] = true
		}
	}

	for i, d := range refs {
		if !d.Placeholder {
			continue
		}
		if _, err := time.Parse(DateLayout, d.Date); err == nil {
			continue
		}
		d.Date = ""
		t, ok := inferDate(refs, i)
		if !ok {
			continue
		}
		if date := t.Format(DateLayout); !taken[date] {
			d.Date = date
			taken[date] = true
		}
	}
}

func inferDate(refs []*domain.ContributionDay, i int) (time.Time, bool) {
	prev := nearestValid(refs, i, -1)
	next := nearestValid(refs, i, 1)
	switch {
	case prev >= 0 && next >= 0:
		if !consecutive(refs, prev, next) {
			return time.Time{}, false
		}
		return dateOf(refs[prev]).AddDate(0, 0, i-prev), true
	case prev >= 0:
		before := nearestValid(refs, prev, -1)
		if before < 0 || !consecutive(refs, before, prev) {
			return time.Time{}, false
		}
		return dateOf(refs[prev]).AddDate(0, 0, i-prev), true
	case next >= 0:
		after := nearestValid(refs, next, 1)
		if after < 0 || !consecutive(refs, next, after) {
			return time.Time{}, false
		}
		return dateOf(refs[next]).AddDate(0, 0, i-next), true
	}
	return time.Time{}, false
}

// nearestValid walks from i in direction step and returns the index of the
// first non-placeholder day, or -1.
func nearestValid(refs []*domain.ContributionDay, i, step int) int {
	for j := i + step; j >= 0 && j < len(refs); j += step {
		if !refs[j].Placeholder {
			return j
		}
	}
	return -1
}

// consecutive reports whether the valid days at a < b are exactly b-a days
// apart, as they would be in an ascending calendar with no gaps.
func consecutive(refs []*domain.ContributionDay, a, b int) bool {
	return dateOf(refs[a]).AddDate(0, 0, b-a).Equal(dateOf(refs[b]))
}

func dateOf(d *domain.ContributionDay) time.Time {
	t, _ := time.Parse(DateLayout, d.Date)
	return t
}

func checkCounts(weeks []domain.ContributionWeek, declared int, report *Report) {
	sum := 0
	for _, w := range weeks {
		for _, d := range w.Days {
			sum += d.Count
			if d.Count > DailyCountCeiling {
				report.warn(WarnCountCeiling, "%s has %d contributions, above ceiling %d", d.Date, d.Count, DailyCountCeiling)
			}
		}
	}
	if sum != declared {
		report.warn(WarnTotalMismatch, "declared total %d does not match day sum %d", declared, sum)
	}
}

func checkDates(weeks []domain.ContributionWeek, report *Report) {
	seen := make(map[string]struct{})
	var dates []time.Time
	for _, w := range weeks {
		for _, d := range w.Days {
			if d.Date == "" {
				continue
			}
			if _, dup := seen[d.Date]; dup {
				report.warn(WarnDuplicateDate, "date %s appears more than once", d.Date)
				continue
			}
			seen[d.Date] = struct{}{}
			t, _ := time.Parse(DateLayout, d.Date)
			dates = append(dates, t)
		}
	}
	if len(dates) < 2 {
		return
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	if span := dates[len(dates)-1].Sub(dates[0]); span > MaxSpan {
		report.warn(WarnDateSpan, "calendar spans %d days, more than one year", int(span.Hours()/24)+1)
	}
}
