package calendar

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/osse101/gitfolio/internal/domain"
)

// LevelFromEnum maps GitHub's contributionLevel enum to a 0-4 bucket.
// Unknown values return -1 so validation can re-derive levels.
func LevelFromEnum(s string) int {
	switch s {
	case LevelNone:
		return 0
	case LevelFirstQuartile:
		return 1
	case LevelSecondQuartile:
		return 2
	case LevelThirdQuartile:
		return 3
	case LevelFourthQuartile:
		return 4
	default:
		return -1
	}
}

// ParseCount reads a contribution count from raw JSON. Counts must be
// non-negative whole numbers, either as JSON numbers or numeric strings.
func ParseCount(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		raw = []byte(s)
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// DeriveLevels assigns levels from the quartiles of the positive counts.
// Zero-count days get level 0.
func DeriveLevels(weeks []domain.ContributionWeek) []domain.ContributionWeek {
	var positive []int
	for _, w := range weeks {
		for _, d := range w.Days {
			if d.Count > 0 {
				positive = append(positive, d.Count)
			}
		}
	}
	sort.Ints(positive)
	q1, q2, q3 := quantile(positive, 0.25), quantile(positive, 0.5), quantile(positive, 0.75)

	out := make([]domain.ContributionWeek, len(weeks))
	for i, w := range weeks {
		days := make([]domain.ContributionDay, len(w.Days))
		for j, d := range w.Days {
			switch {
			case d.Count <= 0:
				d.Level = 0
			case d.Count <= q1:
				d.Level = 1
			case d.Count <= q2:
				d.Level = 2
			case d.Count <= q3:
				d.Level = 3
			default:
				d.Level = MaxLevel
			}
			days[j] = d
		}
		out[i] = domain.ContributionWeek{Days: days}
	}
	return out
}

// quantile uses the nearest-rank method on sorted values.
func quantile(sorted []int, p float64) int {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	return sorted[rank]
}

// levelsConsistent reports whether every level is in range, zero maps to zero
// and levels never decrease as counts grow.
func levelsConsistent(weeks []domain.ContributionWeek) bool {
	type pair struct{ count, level int }
	var pairs []pair
	for _, w := range weeks {
		for _, d := range w.Days {
			if d.Placeholder {
				continue
			}
			if d.Level < 0 || d.Level > MaxLevel {
				return false
			}
			if (d.Count == 0) != (d.Level == 0) {
				return false
			}
			pairs = append(pairs, pair{d.Count, d.Level})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count < pairs[j].count
		}
		return pairs[i].level < pairs[j].level
	})
	for i := 1; i < len(pairs); i++ {
		if pairs[i].level < pairs[i-1].level {
			return false
		}
	}
	return true
}
