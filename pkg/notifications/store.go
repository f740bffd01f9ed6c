package notifications

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/saitotm/md-todo-sub001/pkg/feed"
	"github.com/saitotm/md-todo-sub001/pkg/logger"
)

// Snapshot is the read-only view published to the rendering layer after
// every mutation: the already-sorted live list and the ids currently
// animating out, in display order.
type Snapshot struct {
	Notifications []Notification `json:"notifications"`
	Removing      []string       `json:"removing"`
}

// Store owns the live notification list and the removing set. All methods
// are safe for concurrent use; mutations are serialized so every observer
// sees a fully sorted list within the capacity bound.
//
// A Store must be created with New. Calling methods on a nil or zero-value
// Store panics: that is a wiring bug in the host application, not a runtime
// condition to recover from.
type Store struct {
	mu              sync.Mutex
	capacity        int
	animationWindow time.Duration
	policy          Policy
	live            []Notification
	removing        map[string]struct{}
	scheduler       *DismissScheduler
	feed            *feed.Broadcaster[Snapshot]
	logger          *slog.Logger
	now             func() time.Time
	nextSeq         uint64
	closed          bool
}

// New creates a notification store. Without options it holds at most five
// notifications, purges removing entries after 300ms and applies
// DefaultPolicy.
func New(opts ...StoreOption) *Store {
	s := &Store{
		capacity:        5,
		animationWindow: 300 * time.Millisecond,
		policy:          DefaultPolicy(),
		removing:        make(map[string]struct{}),
		logger:          slog.Default(),
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.scheduler = NewDismissScheduler(s, WithSchedulerLogger(s.logger))

	return s
}

// Show creates a notification, applying the per-type policy defaults
// overridden by opts, and returns its id. If the live list is full, the
// lowest-priority, oldest notifications are evicted first; eviction invokes
// OnDismiss but skips the removal animation. The list is fully sorted before
// Show returns.
func (s *Store) Show(message string, typ Type, opts ...Option) string {
	s.mustBeInitialized()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		panic("notifications: Show called on a closed store")
	}

	tp := s.policy.forType(typ)
	n := Notification{
		ID:          newID(),
		Type:        typ,
		Message:     message,
		AutoDismiss: tp.AutoDismiss,
		Duration:    tp.Duration,
		Persistent:  tp.Persistent,
		Priority:    tp.Priority,
		Dismissible: tp.Dismissible,
		CreatedAt:   s.now(),
		seq:         s.nextSeq,
	}
	s.nextSeq++

	for _, opt := range opts {
		opt(&n)
	}

	s.evictForOneLocked()

	s.live = Rank(append(s.live, n))

	if n.eligibleForAutoDismiss() {
		s.scheduler.Arm(n.ID, n.Duration)
	}

	s.publish(s.snapshotLocked())
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification shown",
		logger.NotificationID(n.ID),
		logger.NotificationType(n.Type),
		logger.Priority(n.Priority),
	)

	return n.ID
}

// Dismiss removes id immediately, without the removal animation. OnDismiss is
// invoked synchronously before the entry leaves the list. Unknown ids are a
// no-op.
func (s *Store) Dismiss(id string) {
	s.mustBeInitialized()

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	n := s.live[idx]
	if n.OnDismiss != nil {
		n.OnDismiss()
	}

	s.live = slices.Delete(s.live, idx, idx+1)
	delete(s.removing, id)
	s.scheduler.Cancel(id)
	s.scheduler.CancelPurge(id)

	s.publish(s.snapshotLocked())
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification dismissed",
		logger.NotificationID(id),
	)
}

// DismissAnimated marks id as removing immediately - still present in the
// live list so the renderer can animate its exit - then removes it outright
// once the animation window elapses. Dismissing an id that is unknown or
// already removing is a no-op; OnDismiss runs once at most.
func (s *Store) DismissAnimated(id string) {
	s.mustBeInitialized()

	s.mu.Lock()
	if s.indexLocked(id) < 0 {
		// The auto-dismiss timer may fire after the notification was
		// removed by another path.
		s.mu.Unlock()
		return
	}

	if err := checkTransition(s.phaseLocked(id), PhaseRemoving); err != nil {
		s.mu.Unlock()
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "removal already in progress",
			logger.NotificationID(id),
			logger.Error(err),
		)
		return
	}

	s.removing[id] = struct{}{}
	s.scheduler.Cancel(id)
	s.scheduler.ArmPurge(id, s.animationWindow)

	s.publish(s.snapshotLocked())
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification removal started",
		logger.NotificationID(id),
		logger.Duration(s.animationWindow),
	)
}

// Clear invokes OnDismiss for every live notification in display order, then
// atomically empties the store. No removal animation runs and no previously
// armed timer has any later effect.
func (s *Store) Clear() {
	s.mustBeInitialized()

	s.mu.Lock()
	for _, n := range s.live {
		if n.OnDismiss != nil {
			n.OnDismiss()
		}
	}

	count := len(s.live)
	s.live = nil
	clear(s.removing)
	s.scheduler.CancelAll()

	s.publish(s.snapshotLocked())
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "notifications cleared",
		logger.Count(count),
	)
}

// Notifications returns a copy of the live list in display order: priority
// descending, then newest first.
func (s *Store) Notifications() []Notification {
	s.mustBeInitialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.live)
}

// RemovingIDs returns the ids currently mid-removal-animation, in display
// order.
func (s *Store) RemovingIDs() []string {
	s.mustBeInitialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removingLocked()
}

// IsRemoving reports whether id is mid-removal-animation.
func (s *Store) IsRemoving(id string) bool {
	s.mustBeInitialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.removing[id]
	return ok
}

// HasActive reports whether any notification is live, regardless of removing
// membership.
func (s *Store) HasActive() bool {
	s.mustBeInitialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live) > 0
}

// PhaseOf returns id's lifecycle phase. Unknown ids report PhaseDismissed.
func (s *Store) PhaseOf(id string) Phase {
	s.mustBeInitialized()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseLocked(id)
}

// Close cancels all outstanding timers and closes the feed, if any. The
// store must not be used afterwards.
func (s *Store) Close() {
	s.mustBeInitialized()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.scheduler.CancelAll()
	s.mu.Unlock()

	if s.feed != nil {
		_ = s.feed.Close()
	}
}

// evictForOneLocked drops the lowest-priority, oldest notifications until
// one slot is free. Eviction is a hard drop: OnDismiss runs, the removal
// animation does not.
func (s *Store) evictForOneLocked() {
	for len(s.live) >= s.capacity {
		victims := slices.Clone(s.live)
		slices.SortStableFunc(victims, evictionOrder)
		victim := victims[0]

		if victim.OnDismiss != nil {
			victim.OnDismiss()
		}

		idx := s.indexLocked(victim.ID)
		s.live = slices.Delete(s.live, idx, idx+1)
		delete(s.removing, victim.ID)
		s.scheduler.Cancel(victim.ID)
		s.scheduler.CancelPurge(victim.ID)

		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification evicted",
			logger.NotificationID(victim.ID),
			logger.NotificationType(victim.Type),
			logger.Priority(victim.Priority),
		)
	}
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.live, func(n Notification) bool { return n.ID == id })
}

func (s *Store) phaseLocked(id string) Phase {
	if _, ok := s.removing[id]; ok {
		return PhaseRemoving
	}
	if s.indexLocked(id) >= 0 {
		return PhaseLive
	}
	return PhaseDismissed
}

func (s *Store) removingLocked() []string {
	ids := make([]string, 0, len(s.removing))
	for _, n := range s.live {
		if _, ok := s.removing[n.ID]; ok {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Notifications: slices.Clone(s.live),
		Removing:      s.removingLocked(),
	}
}

func (s *Store) publish(snap Snapshot) {
	if s.feed != nil {
		s.feed.Publish(snap)
	}
}

func (s *Store) mustBeInitialized() {
	if s == nil || s.removing == nil {
		panic("notifications: Store must be created with New")
	}
}
