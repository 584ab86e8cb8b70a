package dispatch

import "reflect"

// Receiver is a per-instance handler table. Embed it by value in any type
// that should receive events; the zero value is ready to use.
type Receiver struct {
	handlers map[reflect.Type]func(any)
}

// EventReceiver makes any embedder satisfy Handler.
func (r *Receiver) EventReceiver() *Receiver { return r }

// HandleEvent looks up this receiver's own handler for the event's concrete
// type and invokes it synchronously. If no handler is bound for that type,
// or the event is nil, it is a no-op.
func (r *Receiver) HandleEvent(event any) {
	if event == nil || r.handlers == nil {
		return
	}
	if fn, ok := r.handlers[typeKey(event)]; ok {
		fn(event)
	}
}

// Handles reports whether a handler is bound for the given event type.
func (r *Receiver) Handles(eventType reflect.Type) bool {
	_, ok := r.handlers[eventType]
	return ok
}

func (r *Receiver) bind(t reflect.Type, fn func(any)) {
	if r.handlers == nil {
		r.handlers = make(map[reflect.Type]func(any))
	}
	r.handlers[t] = fn
}

func (r *Receiver) unbind(t reflect.Type) {
	delete(r.handlers, t)
}

// typeKey maps an event value to its routing key. Pointer events are keyed
// by the pointed-to type so that *E and E route identically.
func typeKey(event any) reflect.Type {
	t := reflect.TypeOf(event)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
