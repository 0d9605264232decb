// Package language folds per-repository language byte counts into a ranked distribution.
package language

import (
	"math"
	"sort"
	"strings"

	"github.com/osse101/gitfolio/internal/domain"
)

// DefaultTopN is the number of languages shown on the dashboard chart.
const DefaultTopN = 10

// Aggregate sums language bytes across repositories. Blank language
// names and non-positive byte counts contribute nothing.
func Aggregate(perRepo domain.RepositoryLanguages) map[string]int64 {
	totals := make(map[string]int64)
	for _, langs := range perRepo {
		for lang, bytes := range langs {
			lang = strings.TrimSpace(lang)
			if lang == "" || bytes <= 0 {
				continue
			}
			totals[lang] += bytes
		}
	}
	return totals
}

// FromRepositories approximates a distribution from each repository's
// primary language and size when per-repository breakdowns are unavailable.
func FromRepositories(repos []domain.Repository) map[string]int64 {
	perRepo := make(domain.RepositoryLanguages, len(repos))
	for _, r := range repos {
		if r.Language == "" || r.Size <= 0 {
			continue
		}
		key := r.FullName
		if key == "" {
			key = r.Name
		}
		perRepo[key] = map[string]int64{r.Language: r.Size}
	}
	return Aggregate(perRepo)
}

// Rank orders languages by bytes, descending, with name as the tie-break.
// Percentages are taken against the full total before truncating to topN;
// topN <= 0 keeps every language. A zero total yields an empty list.
func Rank(totals map[string]int64, topN int) []domain.LanguageShare {
	var sum int64
	for _, b := range totals {
		if b > 0 {
			sum += b
		}
	}
	ranked := make([]domain.LanguageShare, 0, len(totals))
	if sum == 0 {
		return ranked
	}

	for lang, b := range totals {
		if b <= 0 {
			continue
		}
		ranked = append(ranked, domain.LanguageShare{
			Language:   lang,
			Bytes:      b,
			Percentage: roundTo(float64(b)/float64(sum)*100, 1),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Bytes != ranked[j].Bytes {
			return ranked[i].Bytes > ranked[j].Bytes
		}
		return ranked[i].Language < ranked[j].Language
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
