package registry

import "github.com/simforge/simforge/pkg/sequence"

// Roster is an ordered collection of live instances of one type, meant to
// be owned by the driver rather than held in package-level state. Items
// are appended in construction order and erased by identity on
// destruction. Like the rest of the core it is caller-serialized.
//
// Iterating At(i) while removing items is the caller's hazard; use
// Snapshot to walk a copy instead.
type Roster[T comparable] struct {
	items    []T
	onAdd    []func(T)
	onRemove []func(T)
}

// NewRoster creates an empty roster.
func NewRoster[T comparable]() *Roster[T] {
	return &Roster[T]{}
}

// Add appends v to the roster and fires the add callbacks.
func (r *Roster[T]) Add(v T) {
	r.items = append(r.items, v)
	for _, fn := range r.onAdd {
		fn(v)
	}
}

// Remove erases the first item identical to v, firing the remove
// callbacks, and reports whether one was found. O(n) scan.
func (r *Roster[T]) Remove(v T) bool {
	for i, item := range r.items {
		if item == v {
			r.items = append(r.items[:i], r.items[i+1:]...)
			for _, fn := range r.onRemove {
				fn(v)
			}
			return true
		}
	}
	return false
}

// Len returns the number of live items.
func (r *Roster[T]) Len() int { return len(r.items) }

// At returns the i-th live item in construction order, or false when the
// index is out of range.
func (r *Roster[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(r.items) {
		var zero T
		return zero, false
	}
	return r.items[i], true
}

// Contains reports whether v is currently live.
func (r *Roster[T]) Contains(v T) bool {
	for _, item := range r.items {
		if item == v {
			return true
		}
	}
	return false
}

// Snapshot returns an iterator over a copy of the current items, safe to
// walk while the roster itself is being mutated.
func (r *Roster[T]) Snapshot() *sequence.Iterator[T] {
	items := make([]T, len(r.items))
	copy(items, r.items)
	return sequence.From(items)
}

// OnAdd registers a callback fired after each Add.
func (r *Roster[T]) OnAdd(fn func(T)) {
	r.onAdd = append(r.onAdd, fn)
}

// OnRemove registers a callback fired after each successful Remove.
func (r *Roster[T]) OnRemove(fn func(T)) {
	r.onRemove = append(r.onRemove, fn)
}
