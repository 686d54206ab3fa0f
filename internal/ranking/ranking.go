// Package ranking holds the pure list-ordering logic shared by casino
// rankings and billboard rotation order. Every mutating path in the admin
// API funnels through Normalize so persisted collections always carry
// dense 1..N order values.
package ranking

import "errors"

var (
	ErrNotFound = errors.New("item not found")
	ErrAtTop    = errors.New("already at top")
	ErrAtBottom = errors.New("already at bottom")
)

// Ranked is implemented by entities that carry a 1-based position field.
// AtPosition returns a copy of the entity with its position (and any
// position-derived fields) rewritten.
type Ranked[T any] interface {
	Key() int
	AtPosition(pos int) T
}

// Class maps a casino rank to its display tier. Ranks 1-3 get dedicated
// styling hooks, everything else falls back to the default tier.
func Class(rank int) string {
	switch rank {
	case 1:
		return ""
	case 2:
		return "two"
	case 3:
		return "three"
	default:
		return "default"
	}
}

// Normalize returns a copy of items where the element at index i carries
// position i+1. It never reorders the input, only rewrites positions.
func Normalize[T Ranked[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.AtPosition(i + 1)
	}
	return out
}

// MoveTo removes the item with the given key and reinserts it at dest
// (0-based, clamped to the list bounds), then renumbers. The input slice
// is returned unchanged when the key is unknown.
func MoveTo[T Ranked[T]](items []T, key, dest int) ([]T, error) {
	i := indexOf(items, key)
	if i < 0 {
		return items, ErrNotFound
	}
	if dest < 0 {
		dest = 0
	}
	if dest > len(items)-1 {
		dest = len(items) - 1
	}

	moved := items[i]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:i]...)
	rest = append(rest, items[i+1:]...)

	out := make([]T, 0, len(items))
	out = append(out, rest[:dest]...)
	out = append(out, moved)
	out = append(out, rest[dest:]...)
	return Normalize(out), nil
}

// MoveUp swaps the item with its predecessor. At the top of the list it
// reports ErrAtTop and leaves the input untouched.
func MoveUp[T Ranked[T]](items []T, key int) ([]T, error) {
	i := indexOf(items, key)
	if i < 0 {
		return items, ErrNotFound
	}
	if i == 0 {
		return items, ErrAtTop
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i-1], out[i] = out[i], out[i-1]
	return Normalize(out), nil
}

// MoveDown swaps the item with its successor. At the bottom of the list
// it reports ErrAtBottom and leaves the input untouched.
func MoveDown[T Ranked[T]](items []T, key int) ([]T, error) {
	i := indexOf(items, key)
	if i < 0 {
		return items, ErrNotFound
	}
	if i == len(items)-1 {
		return items, ErrAtBottom
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], out[i+1] = out[i+1], out[i]
	return Normalize(out), nil
}

// Remove deletes the item with the given key and renumbers the survivors
// so the collection stays dense starting at 1.
func Remove[T Ranked[T]](items []T, key int) ([]T, error) {
	i := indexOf(items, key)
	if i < 0 {
		return items, ErrNotFound
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return Normalize(out), nil
}

func indexOf[T Ranked[T]](items []T, key int) int {
	for i, item := range items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}
