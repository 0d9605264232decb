package export

// Format is an export document encoding.
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

// DocumentVersion is bumped when the JSON document layout changes.
const DocumentVersion = "1"

const filenamePrefix = "github-analytics"

// Content types per format
const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// Error messages
const (
	ErrMsgUnknownFormat = "unknown export format"
)
