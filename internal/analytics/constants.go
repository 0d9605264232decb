package analytics

// DefaultTopLanguages is the number of languages included in the analytics payload.
const DefaultTopLanguages = 10

// Log messages
const (
	LogMsgAnalyticsComputed = "Analytics computed"
	LogMsgAnalyticsFailed   = "Analytics computation failed"
	LogMsgLanguageFallback  = "Falling back to repository sizes for languages"
)

// Warning messages surfaced to clients
const (
	WarnMsgLanguageFallback = "language breakdown approximated from repository sizes"
)
