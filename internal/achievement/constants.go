package achievement

// Special badge names
const (
	BadgeHighAverage = "Daily Driver"
	BadgeStarred     = "Starred"
	BadgeForked      = "Forked"
	BadgeLargeCode   = "Heavyweight"
	BadgePopular     = "Popular"
	BadgeRisingStar  = "Rising Star"
	BadgeOnFire      = "On Fire"
	BadgeGistAuthor  = "Gist Author"
)

// Special badge thresholds
const (
	HighAverageThreshold  = 10.0
	PopularStarThreshold  = 100
	RisingStarThreshold   = 10
	ActiveStreakThreshold = 7
)

// LargeCodeThreshold applies to the summed repository size as GitHub reports it, in KB.
const LargeCodeThreshold = 100_000

// ProfileFieldCount is the number of optional fields tracked for completion.
const ProfileFieldCount = 5
