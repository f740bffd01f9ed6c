package feed

import (
	"context"
	"sync"
)

// Subscriber receives values published to a Broadcaster.
// Implementations are safe for concurrent use.
type Subscriber[T any] interface {
	// Updates returns the channel the subscriber receives published values
	// on. The channel is closed when the subscriber or its broadcaster is
	// closed.
	Updates() <-chan T

	// Close detaches the subscriber and closes its channel. Close is
	// idempotent.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
}

func (s *subscriber[T]) Updates() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers v without blocking. Returns false when the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Broadcaster fans published values out to all active subscribers. Slow
// consumers have values dropped rather than blocking Publish. All methods are
// safe for concurrent use.
type Broadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// New creates a Broadcaster whose subscribers buffer up to bufferSize values.
// A minimum buffer size of 1 is enforced so sends stay non-blocking.
func New[T any](bufferSize int) *Broadcaster[T] {
	return &Broadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a new subscriber. The subscription is removed
// automatically when ctx is cancelled. Subscribing to a closed broadcaster
// returns an already-closed subscriber.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber[T]{ch: make(chan T, b.bufferSize)}
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish delivers v to every active subscriber, dropping it for subscribers
// whose buffers are full. Publishing to a closed broadcaster is a no-op.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subscribers {
		sub.send(v)
	}
}

// Close shuts down the broadcaster and closes all subscribers. Safe to call
// multiple times.
func (b *Broadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	// Wait for context-cancellation cleanups so no goroutine touches the
	// subscriber map after Close returns.
	b.cleanupWg.Wait()

	return nil
}

func (b *Broadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
