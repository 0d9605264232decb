// Package export renders analytics as downloadable documents: a JSON
// document, a plain-text summary card and a per-day CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/gitfolio/internal/domain"
)

// Document is the JSON export layout.
type Document struct {
	Version    string           `json:"version"`
	Username   string           `json:"username"`
	Year       int              `json:"year,omitempty"`
	ExportedAt time.Time        `json:"exported_at"`
	Analytics  domain.Analytics `json:"analytics"`
}

// NewDocument wraps analytics for export.
func NewDocument(a domain.Analytics, year int, now time.Time) Document {
	return Document{
		Version:    DocumentVersion,
		Username:   a.User.Login,
		Year:       year,
		ExportedAt: now.UTC(),
		Analytics:  a,
	}
}

// ParseFormat maps a query value to a Format. Empty selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s: %q", domain.ErrInvalidInput, ErrMsgUnknownFormat, s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatText:
		return ContentTypeText
	case FormatCSV:
		return ContentTypeCSV
	default:
		return ContentTypeJSON
	}
}

// extension returns the file extension of f.
func (f Format) extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Filename names an export like github-analytics-octocat-2024-01-08.json.
func Filename(username string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.%s", filenamePrefix, username, now.UTC().Format("2006-01-02"), f.extension())
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCSV writes one row per calendar day in calendar order.
func WriteCSV(w io.Writer, cal domain.ContributionCalendar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "count", "level", "placeholder"}); err != nil {
		return err
	}
	for _, d := range cal.Days() {
		row := []string{d.Date, strconv.Itoa(d.Count), strconv.Itoa(d.Level), strconv.FormatBool(d.Placeholder)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
