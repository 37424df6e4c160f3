package learning

import (
	"slices"
	"time"
)

// Timestamped is anything a Buffer can order and age out.
type Timestamped interface {
	Time() time.Time
}

// Buffer is an oldest-first collection bounded by count and age.
// Eviction always removes from the oldest end.
type Buffer[T Timestamped] struct {
	items    []T
	capacity int
}

// NewBuffer creates an empty buffer holding at most capacity items.
func NewBuffer[T Timestamped](capacity int) *Buffer[T] {
	return &Buffer[T]{capacity: capacity}
}

// Append adds v in timestamp order and trims to capacity.
func (b *Buffer[T]) Append(v T) {
	b.items = append(b.items, v)
	if n := len(b.items); n > 1 && v.Time().Before(b.items[n-2].Time()) {
		slices.SortStableFunc(b.items, func(x, y T) int {
			return x.Time().Compare(y.Time())
		})
	}
	b.TrimToCapacity(b.capacity)
}

// TrimToCapacity keeps the newest n items and reports whether anything was dropped.
func (b *Buffer[T]) TrimToCapacity(n int) bool {
	if n < 0 || len(b.items) <= n {
		return false
	}
	b.items = slices.Clone(b.items[len(b.items)-n:])
	return true
}

// EvictOlderThan drops items older than maxAge at now and reports whether anything was dropped.
func (b *Buffer[T]) EvictOlderThan(maxAge time.Duration, now time.Time) bool {
	cutoff := now.Add(-maxAge)
	kept := b.items[:0]
	for _, it := range b.items {
		if !it.Time().Before(cutoff) {
			kept = append(kept, it)
		}
	}
	dropped := len(kept) != len(b.items)
	clear(b.items[len(kept):])
	b.items = kept
	return dropped
}

// Since returns the items at or after cutoff, oldest first.
func (b *Buffer[T]) Since(cutoff time.Time) []T {
	i, _ := slices.BinarySearchFunc(b.items, cutoff, func(it T, c time.Time) int {
		return it.Time().Compare(c)
	})
	return slices.Clone(b.items[i:])
}

// Items returns a copy of every item, oldest first.
func (b *Buffer[T]) Items() []T {
	return slices.Clone(b.items)
}

func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Load replaces the contents, restoring order and capacity.
func (b *Buffer[T]) Load(items []T) {
	b.items = slices.Clone(items)
	slices.SortStableFunc(b.items, func(x, y T) int {
		return x.Time().Compare(y.Time())
	})
	b.TrimToCapacity(b.capacity)
}

func (b *Buffer[T]) Reset() {
	b.items = nil
}
