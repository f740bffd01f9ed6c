package notifications

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Valid reports whether t is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeWarning, TypeInfo:
		return true
	}
	return false
}

// Priority represents the notification priority level. Higher priorities are
// displayed first regardless of recency.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority converts a priority name into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// Notification is a single status message held by the Store. Records are
// immutable once created; removal-phase membership is tracked by the Store,
// not on the record itself.
type Notification struct {
	// ID is the opaque handle used for dismissal and UI keying. Generated at
	// creation time, practically unique within a session.
	ID string `json:"id"`

	Type    Type   `json:"type"`
	Message string `json:"message"`

	// AutoDismiss arms a dismissal timer for Duration. Ignored when
	// Persistent is set.
	AutoDismiss bool          `json:"auto_dismiss"`
	Duration    time.Duration `json:"duration"`

	// Persistent suppresses auto-dismissal regardless of AutoDismiss.
	Persistent bool `json:"persistent"`

	// Retryable marks the notification as offering a retry affordance;
	// OnRetry is meaningful only when set.
	Retryable bool `json:"retryable"`

	Priority Priority `json:"priority"`

	// Dismissible controls whether the renderer offers a manual-dismiss
	// affordance.
	Dismissible bool `json:"dismissible"`

	// AriaLive and ScreenReaderAnnouncement are accessibility hints passed
	// through to the renderer.
	AriaLive                 string `json:"aria_live,omitempty"`
	ScreenReaderAnnouncement string `json:"screen_reader_announcement,omitempty"`

	// Err optionally carries the underlying error a retryable notification
	// reports on.
	Err error `json:"-"`

	// OnRetry is invoked by the renderer when the user retries. OnDismiss is
	// invoked by the Store exactly once when the notification is dismissed,
	// cleared or evicted.
	OnRetry   func() `json:"-"`
	OnDismiss func() `json:"-"`

	CreatedAt time.Time `json:"created_at"`

	// seq is a per-store insertion counter breaking CreatedAt ties so the
	// display order is a deterministic total function of the list contents.
	seq uint64
}

// eligibleForAutoDismiss reports whether the scheduler should arm a dismissal
// timer for n.
func (n Notification) eligibleForAutoDismiss() bool {
	return n.AutoDismiss && !n.Persistent && n.Duration > 0
}

// newID generates a notification id. Collision-resistant within a session;
// uniqueness is not cryptographically guaranteed and does not need to be.
func newID() string {
	return uuid.New().String()
}
