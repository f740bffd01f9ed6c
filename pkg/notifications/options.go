package notifications

import (
	"log/slog"
	"time"

	"github.com/saitotm/md-todo-sub001/pkg/feed"
)

// Option overrides a per-type policy default for a single Show call.
type Option func(*Notification)

// WithAutoDismiss overrides whether the notification auto-dismisses.
func WithAutoDismiss(auto bool) Option {
	return func(n *Notification) { n.AutoDismiss = auto }
}

// WithDuration overrides how long the notification stays before its
// auto-dismiss timer fires. Ignored when the notification is persistent or
// not auto-dismissing.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) {
		if d > 0 {
			n.Duration = d
		}
	}
}

// WithPersistent overrides whether the notification suppresses auto-dismissal.
func WithPersistent(persistent bool) Option {
	return func(n *Notification) { n.Persistent = persistent }
}

// WithRetryable marks the notification as offering a retry affordance.
func WithRetryable(retryable bool) Option {
	return func(n *Notification) { n.Retryable = retryable }
}

// WithPriority overrides the display priority.
func WithPriority(p Priority) Option {
	return func(n *Notification) { n.Priority = p }
}

// WithDismissible overrides whether the renderer offers manual dismissal.
func WithDismissible(dismissible bool) Option {
	return func(n *Notification) { n.Dismissible = dismissible }
}

// WithAriaLive sets the aria-live politeness hint for the renderer.
func WithAriaLive(v string) Option {
	return func(n *Notification) { n.AriaLive = v }
}

// WithScreenReaderAnnouncement sets a screen-reader-only announcement that
// replaces the visible message for assistive technology.
func WithScreenReaderAnnouncement(v string) Option {
	return func(n *Notification) { n.ScreenReaderAnnouncement = v }
}

// WithError attaches the underlying error a retryable notification reports on.
func WithError(err error) Option {
	return func(n *Notification) { n.Err = err }
}

// WithOnRetry sets the callback invoked by the renderer when the user
// retries the failed action.
func WithOnRetry(fn func()) Option {
	return func(n *Notification) { n.OnRetry = fn }
}

// WithOnDismiss sets the callback invoked exactly once when the notification
// leaves the store, whether dismissed, cleared or evicted. It runs while the
// store lock is held and must not call back into the store.
func WithOnDismiss(fn func()) Option {
	return func(n *Notification) { n.OnDismiss = fn }
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCapacity bounds the live list. Values below one are ignored.
func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithAnimationWindow sets how long a notification stays in the removing set
// before it is purged.
func WithAnimationWindow(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.animationWindow = d
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPolicy replaces the per-type defaults.
func WithPolicy(p Policy) StoreOption {
	return func(s *Store) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithConfig applies environment-loaded configuration: capacity, animation
// window and per-type durations.
func WithConfig(cfg Config) StoreOption {
	return func(s *Store) {
		if cfg.MaxNotifications > 0 {
			s.capacity = cfg.MaxNotifications
		}
		if cfg.AnimationWindow > 0 {
			s.animationWindow = cfg.AnimationWindow
		}
		s.policy = cfg.policy(s.policy)
	}
}

// WithFeed publishes a Snapshot to f after every mutation.
func WithFeed(f *feed.Broadcaster[Snapshot]) StoreOption {
	return func(s *Store) { s.feed = f }
}

// WithClock replaces the store's time source. Intended for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}
