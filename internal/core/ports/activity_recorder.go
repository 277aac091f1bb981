package ports

import (
	"context"
	"time"
)

// ActivityEntry is one audit record of a workflow action.
type ActivityEntry struct {
	// Action names the operation, e.g. "scan_hu" or "verify_item".
	Action string

	// Actor is the username behind the action, empty for anonymous calls.
	Actor string

	// WorkstationCode is the station involved, empty when not applicable.
	WorkstationCode string

	// HUCode and ClientCode give the business context of the action.
	HUCode     string
	ClientCode string

	// Method, Path and StatusCode describe the request the action came in on.
	Method     string
	Path       string
	StatusCode int

	IPAddress string
	UserAgent string

	// RequestBody is the request payload with sensitive fields masked.
	RequestBody map[string]any

	// Extra carries action-specific details serialized alongside the row.
	Extra map[string]any

	DurationMs float64

	// At is when the action happened.
	At time.Time
}

// ActivityRecorder writes audit records. Recording is strictly best effort:
// implementations log and swallow their own failures so an audit outage can
// never break the workflow it observes.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry)
}
