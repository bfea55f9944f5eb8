package domain

// SyncStatus describes how far a mutation got.
type SyncStatus string

const (
	// SyncLocal means applied in memory with no backend configured.
	SyncLocal SyncStatus = "LOCAL"
	// SyncDeferred means applied in memory; the remote write waits for a pending create.
	SyncDeferred SyncStatus = "DEFERRED"
	// SyncConfirmed means applied in memory and acknowledged by the backend.
	SyncConfirmed SyncStatus = "CONFIRMED"
	// SyncFailed means applied in memory while the backend write failed.
	SyncFailed SyncStatus = "FAILED"
	// SyncDiscarded means the acknowledgment arrived too late to be applied.
	SyncDiscarded SyncStatus = "DISCARDED"
	// SyncNoop means the target did not exist and nothing changed.
	SyncNoop SyncStatus = "NOOP"
)

// SyncResult is returned by every store mutation.
type SyncResult struct {
	ID     string     `json:"id"`
	Status SyncStatus `json:"status"`
	Err    error      `json:"-"`
}
