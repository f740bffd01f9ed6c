package notifications

import "slices"

// compareDisplay orders notifications for display: priority descending, then
// CreatedAt descending (newest first), then insertion order descending. The
// comparator is total, so the display order never depends on input order.
func compareDisplay(a, b Notification) int {
	if a.Priority != b.Priority {
		if a.Priority > b.Priority {
			return -1
		}
		return 1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		return 1
	}
	switch {
	case a.seq > b.seq:
		return -1
	case a.seq < b.seq:
		return 1
	}
	return 0
}

// Rank returns list sorted into display order: priority descending, then
// newest first. The input slice is not modified.
func Rank(list []Notification) []Notification {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, compareDisplay)
	return sorted
}

// evictionOrder is the inverse of the display order: lowest priority first,
// then oldest first. The front of a slice sorted with it is the next eviction
// victim when the store is at capacity.
func evictionOrder(a, b Notification) int {
	return compareDisplay(b, a)
}
