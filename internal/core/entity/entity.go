package entity

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/simforge/simforge/internal/core/events/dispatch"
)

// Entity is the unit of composition: an identity-bearing container of
// components, tags and an active flag, with the event-handling capability
// embedded. Entities must be shared by pointer, never copied.
//
// The entity's own active flag is bookkeeping for the embedding driver;
// it does not gate component calls. Suspending an entity snapshots each
// component's individual flag so that resuming restores it, rather than
// forcing every component active.
type Entity struct {
	dispatch.Receiver

	id         string
	components []Component
	tags       []string
	active     bool
	saved      map[Component]bool
}

// New creates an active entity with a fresh unique ID.
func New() *Entity {
	return &Entity{
		id:     uuid.NewString(),
		active: true,
	}
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() string { return e.id }

// AddComponent attaches c to this entity, appending it to the component
// collection. There is no uniqueness check: a second component of the same
// concrete type is permitted, but type-based lookup and removal only ever
// reach the first.
func (e *Entity) AddComponent(c Component) {
	c.attach(e)
	e.components = append(e.components, c)
}

// Get returns the first component whose concrete type is T, or false if
// the entity holds none. Linear scan; the returned reference is borrowed
// and must be re-fetched rather than stored across removals.
func Get[T Component](e *Entity) (T, bool) {
	want := reflect.TypeFor[T]()
	for _, c := range e.components {
		if reflect.TypeOf(c) == want {
			return c.(T), true
		}
	}
	var zero T
	return zero, false
}

// Remove detaches and drops the first component of concrete type T,
// reporting whether one was found. Any saved-state snapshot entry for the
// removed component is purged so a later resume cannot restore a stale
// flag onto an unrelated component.
func Remove[T Component](e *Entity) bool {
	want := reflect.TypeFor[T]()
	for i, c := range e.components {
		if reflect.TypeOf(c) == want {
			delete(e.saved, c)
			e.components = append(e.components[:i], e.components[i+1:]...)
			return true
		}
	}
	return false
}

// Components returns the backing component slice in insertion order.
// Borrowed: callers must not mutate it or hold it across AddComponent.
func (e *Entity) Components() []Component { return e.components }

// InitializeComponents runs each component's Initialize hook once, in
// container order. Call it after all components have been attached.
func (e *Entity) InitializeComponents() {
	for _, c := range e.components {
		c.Initialize()
	}
}

// SetComponentsActive unconditionally sets every component's flag. Unlike
// SetActive it does not snapshot or restore individual states.
func (e *Entity) SetComponentsActive(active bool) {
	for _, c := range e.components {
		c.SetActive(active)
	}
}

// Active reports the entity's own flag.
func (e *Entity) Active() bool { return e.active }

// SetActive suspends or resumes the entity. Suspending records every
// component's current flag and then forces all of them inactive; resuming
// restores each recorded flag. Components added while suspended keep the
// flag they were constructed with and are not retroactively forced
// inactive. Setting the current state again is a no-op, so a double
// suspend cannot overwrite the snapshot with all-false.
func (e *Entity) SetActive(active bool) {
	if e.active == active {
		return
	}
	e.active = active

	if active {
		for c, was := range e.saved {
			c.SetActive(was)
		}
		e.saved = nil
		return
	}

	e.saved = make(map[Component]bool, len(e.components))
	for _, c := range e.components {
		e.saved[c] = c.Active()
		c.SetActive(false)
	}
}
