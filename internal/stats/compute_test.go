package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/testing/fixtures"
)

var now = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestCompute_SevenDayStreak(t *testing.T) {
	cal := fixtures.YearCalendar(2024, func(d time.Time) int {
		if d.Month() == time.March && d.Day() <= 7 {
			return 3
		}
		return 0
	})

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.Equal(t, 7, got.LongestStreak)
	assert.Equal(t, 21, got.TotalContributions)
	assert.Equal(t, 21, got.ContributionsLastYear)
	assert.Zero(t, got.CurrentStreak)
	assert.Equal(t, "March", got.MostActiveMonth)
	assert.InDelta(t, 21.0/366.0, got.AveragePerDay, 1e-9)
}

func TestCompute_PastYearTrailingRun(t *testing.T) {
	cal := fixtures.YearCalendar(2023, func(d time.Time) int {
		if d.Month() == time.December && d.Day() >= 22 {
			return 4
		}
		return 0
	})

	got, err := Compute(cal, 2023, now)

	require.NoError(t, err)
	assert.Zero(t, got.CurrentStreak)
	assert.Equal(t, 10, got.LongestStreak)
}

func TestCompute_CurrentStreak(t *testing.T) {
	active := func(d time.Time) int {
		if d.Month() == time.October && d.Day() >= 11 && d.Day() <= 15 {
			return 2
		}
		if d.Month() == time.October && d.Day() == 10 {
			return 0
		}
		if d.Before(fixtures.Date("2026-10-10")) {
			return 1
		}
		return 0
	}
	cal := fixtures.YearCalendar(2026, active)

	t.Run("present year counts back from today", func(t *testing.T) {
		got, err := Compute(cal, 2026, now)
		require.NoError(t, err)
		assert.Equal(t, 5, got.CurrentStreak)
	})

	t.Run("unspecified year behaves as present", func(t *testing.T) {
		got, err := Compute(cal, 0, now)
		require.NoError(t, err)
		assert.Equal(t, 5, got.CurrentStreak)
	})

	t.Run("quiet today ends the streak", func(t *testing.T) {
		got, err := Compute(cal, 0, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Zero(t, got.CurrentStreak)
	})

	t.Run("longest streak covers the early run", func(t *testing.T) {
		got, err := Compute(cal, 0, now)
		require.NoError(t, err)
		assert.Equal(t, 282, got.LongestStreak)
		assert.LessOrEqual(t, got.CurrentStreak, len(cal.Days()))
	})
}

func TestCompute_UnsortedInput(t *testing.T) {
	cal := fixtures.Calendar("2024-06-03", 1, 1, 0, 1, 1, 1, 1)
	w := cal.Weeks[0].Days
	w[0], w[6] = w[6], w[0]
	w[2], w[4] = w[4], w[2]

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.Equal(t, 4, got.LongestStreak)
}

func TestCompute_DateGapBreaksStreak(t *testing.T) {
	cal := domain.ContributionCalendar{Weeks: []domain.ContributionWeek{{Days: []domain.ContributionDay{
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 1},
		{Date: "2024-01-05", Count: 1},
	}}}}

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.Equal(t, 2, got.LongestStreak)
}

func TestCompute_RepeatedDatesIgnoreStorageOrder(t *testing.T) {
	day := func(date string, count int) domain.ContributionDay {
		return domain.ContributionDay{Date: date, Count: count}
	}
	today := fixtures.Date("2024-01-03")

	tests := []struct {
		name string
		days []domain.ContributionDay
	}{
		{"active copy first", []domain.ContributionDay{
			day("2024-01-01", 3), day("2024-01-02", 3), day("2024-01-02", 0), day("2024-01-03", 3),
		}},
		{"quiet copy first", []domain.ContributionDay{
			day("2024-01-01", 3), day("2024-01-02", 0), day("2024-01-02", 3), day("2024-01-03", 3),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := domain.ContributionCalendar{Weeks: []domain.ContributionWeek{{Days: tt.days}}}

			got, err := Compute(cal, 0, today)

			require.NoError(t, err)
			assert.Equal(t, 3, got.CurrentStreak)
			assert.Equal(t, 3, got.LongestStreak)
			assert.Equal(t, 9, got.TotalContributions, "every stored day still counts toward the total")
		})
	}
}

func TestCompute_TieBreakFirstEncountered(t *testing.T) {
	// 2024-01-01 is a Monday
	cal := fixtures.Calendar("2024-01-01", 5, 5, 0, 0, 0, 0, 0)
	cal.Weeks = append(cal.Weeks, fixtures.Calendar("2024-02-05", 10).Weeks...)

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.Equal(t, "Monday", got.MostActiveDay, "Monday 15 beats Tuesday 5")
	assert.Equal(t, "January", got.MostActiveMonth, "January and February tie at 10")
}

func TestCompute_TieBreakWeekday(t *testing.T) {
	// Wednesday first, then a Monday with the same total
	cal := fixtures.Calendar("2024-01-03", 4, 0, 0, 0, 0, 4)

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.Equal(t, "Wednesday", got.MostActiveDay)
}

func TestCompute_PlaceholdersExcludedFromAverage(t *testing.T) {
	cal := fixtures.Calendar("2024-01-01", 2, 2, 2, 0)
	cal.Weeks[0].Days[3].Placeholder = true

	got, err := Compute(cal, 2024, now)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.AveragePerDay, 1e-9)
	assert.Equal(t, 3, got.LongestStreak)
}

func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cal  domain.ContributionCalendar
	}{
		{"no weeks", domain.ContributionCalendar{}},
		{"empty weeks", domain.ContributionCalendar{Weeks: []domain.ContributionWeek{{}, {}}}},
		{"undated days", domain.ContributionCalendar{Weeks: []domain.ContributionWeek{{Days: []domain.ContributionDay{{Count: 3}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.cal, 0, now)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		year := 2015 + rng.Intn(11)
		cal := fixtures.YearCalendar(year, func(time.Time) int {
			if rng.Intn(3) == 0 {
				return 0
			}
			return rng.Intn(12)
		})
		days := cal.Days()

		first, err := Compute(cal, year, now)
		require.NoError(t, err)
		second, err := Compute(cal, year, now)
		require.NoError(t, err)

		assert.Equal(t, first, second, "idempotent")

		sum := 0
		for _, d := range days {
			sum += d.Count
		}
		assert.Equal(t, sum, first.TotalContributions)
		assert.GreaterOrEqual(t, first.LongestStreak, 0)
		assert.LessOrEqual(t, first.LongestStreak, len(days))
		assert.GreaterOrEqual(t, first.CurrentStreak, 0)
		assert.LessOrEqual(t, first.CurrentStreak, len(days))
		assert.Zero(t, first.CurrentStreak, "year %d is in the past", year)
	}
}
