package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/saitotm/md-todo-sub001/pkg/logger"
)

// Dismisser receives timer firings from a DismissScheduler. Both methods
// must be idempotent: a timer that fires after its target is already gone
// must find a no-op, never an error.
type Dismisser interface {
	// DismissAnimated begins the two-phase removal for id.
	DismissAnimated(id string)

	// Dismiss removes id outright. Used when the animation window of an
	// already-removing notification elapses.
	Dismiss(id string)
}

// DismissSchedulerOption configures a DismissScheduler.
type DismissSchedulerOption func(*DismissScheduler)

// WithSchedulerLogger sets the scheduler logger.
func WithSchedulerLogger(logger *slog.Logger) DismissSchedulerOption {
	return func(d *DismissScheduler) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// DismissScheduler owns the deferred actions of the notification lifecycle:
// one auto-dismiss timer per eligible live notification, and one purge timer
// per notification mid-removal-animation. At most one timer of each kind
// exists per id; arming replaces, cancelling is deterministic, and a timer
// that loses a race with another removal path fires into an idempotent
// Dismisser method.
type DismissScheduler struct {
	target        Dismisser
	logger        *slog.Logger
	mu            sync.Mutex
	gen           uint64
	dismissTimers map[string]*schedulerTimer
	purgeTimers   map[string]*schedulerTimer
}

// schedulerTimer pairs a timer with the generation it was armed at, so a
// fired timer cannot clobber the bookkeeping of a replacement armed for the
// same id.
type schedulerTimer struct {
	timer *time.Timer
	gen   uint64
}

// NewDismissScheduler creates a scheduler firing into target. A nil target is
// a wiring bug and panics.
func NewDismissScheduler(target Dismisser, opts ...DismissSchedulerOption) *DismissScheduler {
	if target == nil {
		panic("notifications: dismiss scheduler requires a target")
	}

	d := &DismissScheduler{
		target:        target,
		logger:        slog.Default(),
		dismissTimers: make(map[string]*schedulerTimer),
		purgeTimers:   make(map[string]*schedulerTimer),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Arm schedules DismissAnimated(id) after delay, replacing any previously
// armed auto-dismiss timer for id.
func (d *DismissScheduler) Arm(id string, delay time.Duration) {
	d.arm(d.dismissTimers, id, delay, d.target.DismissAnimated)

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "armed auto-dismiss timer",
		logger.NotificationID(id),
		logger.Duration(delay),
	)
}

// ArmPurge schedules Dismiss(id) after the animation window, replacing any
// previously armed purge timer for id.
func (d *DismissScheduler) ArmPurge(id string, window time.Duration) {
	d.arm(d.purgeTimers, id, window, d.target.Dismiss)

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "armed purge timer",
		logger.NotificationID(id),
		logger.Duration(window),
	)
}

func (d *DismissScheduler) arm(timers map[string]*schedulerTimer, id string, delay time.Duration, fire func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := timers[id]; ok {
		t.timer.Stop()
	}

	d.gen++
	gen := d.gen
	entry := &schedulerTimer{gen: gen}
	entry.timer = time.AfterFunc(delay, func() {
		d.clearFired(timers, id, gen)
		fire(id)
	})
	timers[id] = entry
}

// clearFired removes a fired timer's map entry unless a newer timer has
// already replaced it.
func (d *DismissScheduler) clearFired(timers map[string]*schedulerTimer, id string, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := timers[id]; ok && t.gen == gen {
		delete(timers, id)
	}
}

// Cancel stops the auto-dismiss timer for id, if any. A timer that already
// fired but has not run yet will no-op against the idempotent target.
func (d *DismissScheduler) Cancel(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.dismissTimers[id]; ok {
		t.timer.Stop()
		delete(d.dismissTimers, id)
	}
}

// CancelPurge stops the purge timer for id, if any.
func (d *DismissScheduler) CancelPurge(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.purgeTimers[id]; ok {
		t.timer.Stop()
		delete(d.purgeTimers, id)
	}
}

// CancelAll stops every outstanding timer.
func (d *DismissScheduler) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, t := range d.dismissTimers {
		t.timer.Stop()
		delete(d.dismissTimers, id)
	}
	for id, t := range d.purgeTimers {
		t.timer.Stop()
		delete(d.purgeTimers, id)
	}
}

// Armed reports whether an auto-dismiss timer is outstanding for id.
func (d *DismissScheduler) Armed(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.dismissTimers[id]
	return ok
}

// PurgeArmed reports whether a purge timer is outstanding for id.
func (d *DismissScheduler) PurgeArmed(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.purgeTimers[id]
	return ok
}
