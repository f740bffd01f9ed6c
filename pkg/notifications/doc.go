// Package notifications implements the in-memory notification core of the
// md-todo client: transient and persistent status messages (success, error,
// warning, info) with priority ordering, capacity eviction and timer-driven
// two-phase dismissal.
//
// # Architecture
//
// The package is built from three cooperating parts:
//
//   - Store: owns the sorted list of live notifications and the set of ids
//     mid-removal-animation; exposes Show, Dismiss, DismissAnimated and Clear.
//   - DismissScheduler: maps each auto-dismissing notification to a
//     cancellable timer, and each removal animation to a purge timer.
//   - Rank: the pure ordering function applied after every mutation
//     (priority descending, then newest first).
//
// A notification leaves the store in two phases: it first enters the
// "removing" set while still present in the live list (so a renderer can play
// an exit animation), then after the animation window it is deleted from
// both. Immediate dismissal, capacity eviction and Clear skip the removing
// phase.
//
// # Basic Usage
//
//	store := notifications.New(notifications.WithCapacity(5))
//	defer store.Close()
//
//	id := store.Show("todo saved", notifications.TypeSuccess)
//
//	store.Show("failed to sync", notifications.TypeError,
//	    notifications.WithOnRetry(resync),
//	    notifications.WithRetryable(true),
//	)
//
//	store.Dismiss(id)
//
// # Observing Changes
//
// A renderer subscribes to store snapshots through a feed broadcaster:
//
//	f := feed.New[notifications.Snapshot](8)
//	store := notifications.New(notifications.WithFeed(f))
//
//	sub := f.Subscribe(ctx)
//	for snap := range sub.Updates() {
//	    render(snap.Notifications, snap.Removing)
//	}
//
// Every mutation publishes a fresh snapshot: the already-sorted live list and
// the ids currently animating out.
//
// # Callbacks
//
// OnDismiss and OnRetry callbacks are invoked synchronously while the store
// lock is held. They must not call back into the store.
//
// # Defaults
//
// Per-type behavior comes from a Policy. DefaultPolicy encodes the stock
// md-todo behavior (success auto-dismisses after 3s, errors are persistent
// and high priority); LoadPolicy overlays a YAML file on top of it, and
// Config wires the common knobs to environment variables.
package notifications
