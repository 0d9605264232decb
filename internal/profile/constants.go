package profile

// Latest profiles paging
const (
	DefaultLatestLimit = 12
	MaxLatestLimit     = 50
)

// Log messages
const (
	LogMsgProfileSaved      = "Profile saved"
	LogMsgProfileDeleted    = "Profile deleted"
	LogMsgProfileAutoSaved  = "Profile auto-saved"
	LogMsgAutoSaveQueued    = "Profile auto-save queued"
	LogMsgAutoSaveNotQueued = "Profile auto-save skipped, queue unavailable"
	LogMsgSnapshotsPruned   = "Stale profile snapshots pruned"
)

// Error messages
const (
	ErrMsgOwnerRequired    = "owner id is required"
	ErrMsgUsernameRequired = "github username is required"
	ErrMsgNegativeCount    = "counts must not be negative"
	ErrMsgSaveFailed       = "failed to save profile"
	ErrMsgListFailed       = "failed to list profiles"
	ErrMsgDeleteFailed     = "failed to delete profile"
	ErrMsgPruneFailed      = "failed to prune snapshots"

	ErrMsgRetentionPositive = "retention must be positive"
)
