package dispatch

import "reflect"

// Dispatcher owns the receiver directory: event type -> receivers that
// registered for it, in registration order. It is an explicitly owned
// object; the embedding driver decides its lifetime.
type Dispatcher struct {
	directory map[reflect.Type][]*Receiver
	observers map[Observer]struct{}
	metrics   Metrics
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		directory: make(map[reflect.Type][]*Receiver),
		observers: make(map[Observer]struct{}),
	}
}

// On binds fn as h's single handler for events of type E, replacing any
// previous binding for that type, and appends h to the dispatcher's
// directory for E. The append happens once per call: registering the same
// receiver twice for the same type leaves two directory entries, and a
// broadcast will visit that receiver twice (invoking the current handler
// both times). Use Off to drop all entries for the pair.
func On[E any](d *Dispatcher, h Handler, fn func(*E)) {
	t := reflect.TypeFor[E]()
	r := h.EventReceiver()
	r.bind(t, func(event any) {
		if e, ok := event.(*E); ok {
			fn(e)
			return
		}
		if e, ok := event.(E); ok {
			fn(&e)
		}
	})
	d.directory[t] = append(d.directory[t], r)
}

// Off removes h's handler for event type E and every directory entry for
// the (h, E) pair. No-op if nothing was registered.
func Off[E any](d *Dispatcher, h Handler) {
	t := reflect.TypeFor[E]()
	r := h.EventReceiver()
	r.unbind(t)
	d.remove(t, r)
}

// Unregister removes every directory entry for h, across all event types.
// Drivers call this from their teardown path so that a discarded instance
// can never be reached by a later broadcast.
func (d *Dispatcher) Unregister(h Handler) {
	r := h.EventReceiver()
	for t := range d.directory {
		d.remove(t, r)
	}
}

// Broadcast delivers the event to every receiver registered for its
// concrete type, in registration order. Receivers with no handler bound
// anymore are skipped. A nil event is a no-op.
func (d *Dispatcher) Broadcast(event any) {
	if event == nil {
		return
	}
	t := typeKey(event)
	receivers := d.directory[t]

	for _, r := range receivers {
		r.HandleEvent(event)
	}

	if len(d.observers) > 0 {
		for obs := range d.observers {
			obs.OnBroadcast(t.String(), len(receivers))
		}
		d.metrics.Broadcasts++
		d.metrics.Deliveries += uint64(len(receivers))
		if len(receivers) == 0 {
			d.metrics.Misses++
		}
	}
}

// ReceiverCount returns the number of directory entries for event type E,
// counting duplicates from repeated registration.
func ReceiverCount[E any](d *Dispatcher) int {
	return len(d.directory[reflect.TypeFor[E]()])
}

// AddObserver registers an observer to receive broadcast callbacks.
func (d *Dispatcher) AddObserver(obs Observer) {
	d.observers[obs] = struct{}{}
}

// RemoveObserver unregisters a previously added observer.
func (d *Dispatcher) RemoveObserver(obs Observer) {
	delete(d.observers, obs)
}

// GetMetrics returns a snapshot of accumulated delivery counters. Counters
// only advance while at least one observer is registered.
func (d *Dispatcher) GetMetrics() Metrics {
	return d.metrics
}

func (d *Dispatcher) remove(t reflect.Type, r *Receiver) {
	entries := d.directory[t]
	// Fresh slice so an in-flight broadcast over the old entries is not
	// disturbed by the compaction.
	kept := make([]*Receiver, 0, len(entries))
	for _, e := range entries {
		if e != r {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(d.directory, t)
	} else {
		d.directory[t] = kept
	}
}
