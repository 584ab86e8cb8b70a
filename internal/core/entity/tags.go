package entity

import "slices"

// AddTag appends a label to the entity. Duplicates are permitted.
func (e *Entity) AddTag(tag string) {
	e.tags = append(e.tags, tag)
}

// HasTag reports whether the entity carries the label.
func (e *Entity) HasTag(tag string) bool {
	return slices.Contains(e.tags, tag)
}

// RemoveTag drops the first matching label, if any.
func (e *Entity) RemoveTag(tag string) {
	if i := slices.Index(e.tags, tag); i >= 0 {
		e.tags = append(e.tags[:i], e.tags[i+1:]...)
	}
}

// Tags returns the backing label slice in insertion order. Borrowed: not
// stable across later tag mutations.
func (e *Entity) Tags() []string { return e.tags }
