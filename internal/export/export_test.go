package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/testing/fixtures"
)

var exportedAt = time.Date(2024, time.January, 8, 15, 4, 5, 0, time.UTC)

func sampleAnalytics() domain.Analytics {
	return domain.Analytics{
		User:     fixtures.Profile("octocat", fixtures.Date("2011-01-25")),
		Calendar: fixtures.Calendar("2024-01-01", 0, 3, 12),
		Stats: domain.ActivityStats{
			TotalContributions: 12345,
			AveragePerDay:      3.5,
			CurrentStreak:      4,
			LongestStreak:      21,
			MostActiveDay:      "Tuesday",
			MostActiveMonth:    "March",
		},
		Languages: []domain.LanguageShare{
			{Language: "Go", Bytes: 900, Percentage: 90},
			{Language: "Shell", Bytes: 100, Percentage: 10},
		},
		Achievements: domain.ProfileAchievements{
			ProfileCompletion: 80,
			Achievements: []domain.Achievement{
				{Name: "Contribution Legend", Category: domain.CategoryContribution, Description: "10,000+ contributions"},
			},
			SpecialBadges: []string{"Rising Star"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"csv", FormatCSV, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "github-analytics-octocat-2024-01-08.json", Filename("octocat", FormatJSON, exportedAt))
	assert.Equal(t, "github-analytics-octocat-2024-01-08.txt", Filename("octocat", FormatText, exportedAt))
	assert.Equal(t, "github-analytics-octocat-2024-01-08.csv", Filename("octocat", FormatCSV, exportedAt))
}

func TestWriteJSON(t *testing.T) {
	doc := NewDocument(sampleAnalytics(), 2024, exportedAt)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, DocumentVersion, decoded["version"])
	assert.Equal(t, "octocat", decoded["username"])
	assert.EqualValues(t, 2024, decoded["year"])
	assert.Equal(t, "2024-01-08T15:04:05Z", decoded["exported_at"])
	assert.Contains(t, decoded, "analytics")
}

func TestWriteText(t *testing.T) {
	doc := NewDocument(sampleAnalytics(), 2024, exportedAt)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, doc, language.English))
	out := buf.String()

	assert.Contains(t, out, "GitHub Analytics: The Octocat (@octocat)")
	assert.Contains(t, out, "Contributions in 2024")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "21 days")
	assert.Contains(t, out, "1. Go")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "Contribution")
	assert.Contains(t, out, "Rising Star")

	// each section renders as a bordered table
	assert.Regexp(t, `\|\s+Metric\s+\|\s+Value\s+\|`, out)
	assert.Regexp(t, `\| Total\s+\| 12,345\s+\|`, out)
	assert.Contains(t, out, "+-")
}

func TestWriteText_GermanGrouping(t *testing.T) {
	doc := NewDocument(sampleAnalytics(), 0, exportedAt)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, doc, language.German))
	assert.Contains(t, buf.String(), "12.345")
	assert.Contains(t, buf.String(), "last 12 months")
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.English, MatchLanguage(""))
	assert.Equal(t, language.English, MatchLanguage("not a header;;"))
	assert.Equal(t, language.German, MatchLanguage("de-CH,de;q=0.9,en;q=0.8"))
	assert.Equal(t, language.French, MatchLanguage("fr"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleAnalytics().Calendar))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"date", "count", "level", "placeholder"}, rows[0])
	assert.Equal(t, []string{"2024-01-02", "3", "1", "false"}, rows[2])
	assert.Equal(t, []string{"2024-01-03", "12", "4", "false"}, rows[3])
}
