// Package feed provides a small in-memory broadcaster for pushing state
// snapshots to interested consumers, typically a rendering layer that needs
// to observe every mutation of an in-memory store.
//
// A Broadcaster fans each published value out to all active subscribers over
// buffered channels. Publishing never blocks: when a subscriber's buffer is
// full the value is dropped for that subscriber, on the assumption that a
// later snapshot supersedes it.
//
//	f := feed.New[StoreSnapshot](8)
//	defer f.Close()
//
//	sub := f.Subscribe(ctx)
//	go func() {
//	    for snap := range sub.Updates() {
//	        render(snap)
//	    }
//	}()
//
//	f.Publish(currentSnapshot())
//
// Subscriptions are scoped to their context and are cleaned up automatically
// when it is cancelled.
package feed
