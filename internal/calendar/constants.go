package calendar

import "time"

// DateLayout is the wire format of contribution day dates.
const DateLayout = "2006-01-02"

const (
	// DaysPerWeek is the nominal length of a contribution week.
	DaysPerWeek = 7
	// MaxLevel is the highest heatmap bucket.
	MaxLevel = 4
	// DailyCountCeiling flags single-day counts that are implausible for one person.
	DailyCountCeiling = 500
	// MaxSpan is the widest date range a single calendar query is expected to cover.
	MaxSpan = 366 * 24 * time.Hour
)

// Warning codes, also used as metric label values.
const (
	WarnMalformedDay  = "malformed_day"
	WarnWeekLength    = "week_length"
	WarnEmptyWeek     = "empty_week"
	WarnCountCeiling  = "count_ceiling"
	WarnDateSpan      = "date_span"
	WarnDuplicateDate = "duplicate_date"
	WarnTotalMismatch = "total_mismatch"
	WarnLevelsDerived = "levels_derived"
)

// Log messages
const (
	LogMsgCalendarWarning   = "Contribution calendar anomaly"
	LogMsgPartialEdgeWeek   = "Partial week at calendar edge"
	LogMsgCalendarRejected  = "Contribution calendar rejected"
	LogMsgCalendarValidated = "Contribution calendar validated"
)

// Error messages
const (
	ErrMsgNoWeeks     = "calendar has no weeks"
	ErrMsgNoValidDays = "calendar has no valid day"
)

// GitHub contributionLevel enum values
const (
	LevelNone           = "NONE"
	LevelFirstQuartile  = "FIRST_QUARTILE"
	LevelSecondQuartile = "SECOND_QUARTILE"
	LevelThirdQuartile  = "THIRD_QUARTILE"
	LevelFourthQuartile = "FOURTH_QUARTILE"
)
