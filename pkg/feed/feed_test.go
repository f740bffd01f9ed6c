package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saitotm/md-todo-sub001/pkg/feed"
)

func receiveOne[T any](t *testing.T, sub feed.Subscriber[T]) T {
	t.Helper()
	select {
	case v, ok := <-sub.Updates():
		require.True(t, ok, "subscriber channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		panic("unreachable")
	}
}

func TestBroadcaster_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	b := feed.New[int](4)
	defer b.Close()

	ctx := context.Background()
	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)

	b.Publish(42)

	assert.Equal(t, 42, receiveOne(t, sub1))
	assert.Equal(t, 42, receiveOne(t, sub2))
}

func TestBroadcaster_DropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	b := feed.New[int](1)
	defer b.Close()

	sub := b.Subscribe(context.Background())

	b.Publish(1)
	b.Publish(2) // dropped, buffer holds one value

	assert.Equal(t, 1, receiveOne(t, sub))

	select {
	case v := <-sub.Updates():
		t.Fatalf("expected no buffered value, got %d", v)
	default:
	}
}

func TestBroadcaster_ContextCancellationUnsubscribes(t *testing.T) {
	t.Parallel()

	b := feed.New[string](2)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)

	cancel()

	// The cleanup goroutine closes the channel.
	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not closed after context cancellation")
	}
}

func TestBroadcaster_SubscribeAfterClose(t *testing.T) {
	t.Parallel()

	b := feed.New[int](2)
	require.NoError(t, b.Close())

	sub := b.Subscribe(context.Background())
	_, ok := <-sub.Updates()
	assert.False(t, ok, "expected a closed subscriber")
}

func TestBroadcaster_CloseIdempotent(t *testing.T) {
	t.Parallel()

	b := feed.New[int](2)
	sub := b.Subscribe(context.Background())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := <-sub.Updates()
	assert.False(t, ok)

	// Publishing after close must not panic.
	assert.NotPanics(t, func() { b.Publish(3) })
}

func TestSubscriber_CloseIdempotent(t *testing.T) {
	t.Parallel()

	b := feed.New[int](2)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
}
