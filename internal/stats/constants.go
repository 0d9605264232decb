package stats

// Error messages
const (
	ErrMsgNoWeeks = "calendar has no weeks"
	ErrMsgNoDays  = "calendar has no dated days"
)
