package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supportedTags are the locales number formatting is matched against.
var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Portuguese,
	language.Japanese,
}

var matcher = language.NewMatcher(supportedTags)

// MatchLanguage picks the closest supported locale for an Accept-Language
// header, defaulting to English.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supportedTags[idx]
}

// WriteText writes a plain-text summary card. Numbers are grouped for tag.
func WriteText(w io.Writer, doc Document, tag language.Tag) error {
	p := message.NewPrinter(tag)
	title := cases.Title(language.English)
	a := doc.Analytics

	var buf bytes.Buffer
	name := a.User.Name
	if name == "" {
		name = a.User.Login
	}
	p.Fprintf(&buf, "GitHub Analytics: %s (@%s)\n", name, a.User.Login)
	p.Fprintf(&buf, "Generated %s\n", doc.ExportedAt.Format("2006-01-02"))

	profile := [][]string{
		{"Public repositories", p.Sprintf("%d", a.User.PublicRepos)},
		{"Followers", p.Sprintf("%d", a.User.Followers)},
		{"Following", p.Sprintf("%d", a.User.Following)},
	}
	if !a.User.CreatedAt.IsZero() {
		profile = append(profile, []string{"Account created", a.User.CreatedAt.Format("2006-01-02")})
	}
	profile = append(profile, []string{"Profile completion", p.Sprintf("%d%%", a.Achievements.ProfileCompletion)})
	writeSection(&buf, "Profile", []string{"Field", "Value"}, profile)

	heading := "Contributions, last 12 months"
	if doc.Year != 0 {
		heading = "Contributions in " + strconv.Itoa(doc.Year)
	}
	contrib := [][]string{
		{"Total", p.Sprintf("%d", a.Stats.TotalContributions)},
		{"Average per day", p.Sprintf("%.2f", a.Stats.AveragePerDay)},
		{"Current streak", p.Sprintf("%d days", a.Stats.CurrentStreak)},
		{"Longest streak", p.Sprintf("%d days", a.Stats.LongestStreak)},
	}
	if a.Stats.MostActiveDay != "" {
		contrib = append(contrib, []string{"Most active day", a.Stats.MostActiveDay})
	}
	if a.Stats.MostActiveMonth != "" {
		contrib = append(contrib, []string{"Most active month", a.Stats.MostActiveMonth})
	}
	writeSection(&buf, heading, []string{"Metric", "Value"}, contrib)

	if len(a.Languages) > 0 {
		rows := make([][]string, 0, len(a.Languages))
		for i, l := range a.Languages {
			rows = append(rows, []string{p.Sprintf("%d. %s", i+1, l.Language), p.Sprintf("%.1f%%", l.Percentage)})
		}
		writeSection(&buf, "Top languages", []string{"Language", "Share"}, rows)
	}

	if len(a.Achievements.Achievements) > 0 {
		rows := make([][]string, 0, len(a.Achievements.Achievements))
		for _, ach := range a.Achievements.Achievements {
			rows = append(rows, []string{title.String(string(ach.Category)), ach.Name, ach.Description})
		}
		writeSection(&buf, "Achievements", []string{"Category", "Achievement", "Description"}, rows)
	}

	if len(a.Achievements.SpecialBadges) > 0 {
		rows := make([][]string, 0, len(a.Achievements.SpecialBadges))
		for _, b := range a.Achievements.SpecialBadges {
			rows = append(rows, []string{b})
		}
		writeSection(&buf, "Badges", []string{"Badge"}, rows)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeSection(buf *bytes.Buffer, heading string, header []string, rows [][]string) {
	fmt.Fprintf(buf, "\n%s\n", heading)
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}
