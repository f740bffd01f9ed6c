package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_PriorityThenRecency(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []Notification{
		{ID: "old-low", Priority: PriorityLow, CreatedAt: base},
		{ID: "new-high", Priority: PriorityHigh, CreatedAt: base.Add(3 * time.Second)},
		{ID: "old-high", Priority: PriorityHigh, CreatedAt: base.Add(time.Second)},
		{ID: "new-medium", Priority: PriorityMedium, CreatedAt: base.Add(2 * time.Second)},
	}

	sorted := Rank(list)

	got := make([]string, len(sorted))
	for i, n := range sorted {
		got[i] = n.ID
	}
	assert.Equal(t, []string{"new-high", "old-high", "new-medium", "old-low"}, got)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []Notification{
		{ID: "a", Priority: PriorityLow, CreatedAt: base},
		{ID: "b", Priority: PriorityHigh, CreatedAt: base},
	}

	_ = Rank(list)

	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestRank_EqualPairsOrderedBySequence(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []Notification{
		{ID: "first", Priority: PriorityMedium, CreatedAt: at, seq: 1},
		{ID: "third", Priority: PriorityMedium, CreatedAt: at, seq: 3},
		{ID: "second", Priority: PriorityMedium, CreatedAt: at, seq: 2},
	}

	// The comparator is total: equal (priority, createdAt) pairs fall back
	// to insertion order, newest first, regardless of input order.
	sorted := Rank(list)
	require.Len(t, sorted, 3)
	assert.Equal(t, "third", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "first", sorted[2].ID)

	reversed := Rank([]Notification{list[1], list[2], list[0]})
	assert.Equal(t, sorted, reversed)
}

func TestEvictionOrder_IsInverseOfDisplayOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lowOld := Notification{ID: "low-old", Priority: PriorityLow, CreatedAt: base}
	highNew := Notification{ID: "high-new", Priority: PriorityHigh, CreatedAt: base.Add(time.Second)}

	assert.Negative(t, evictionOrder(lowOld, highNew), "lowest priority, oldest evicts first")
	assert.Positive(t, evictionOrder(highNew, lowOld))
	assert.Zero(t, evictionOrder(lowOld, lowOld))
}
