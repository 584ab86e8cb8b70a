// Package dispatch implements an in-process, type-routed event mechanism.
//
// Key characteristics:
// - Type-based routing: an event is any Go value; its concrete type is the
//   routing key. Pointer events route by the pointed-to type.
// - Single slot per pair: a Receiver holds at most one handler per event
//   type. Registering again for the same type replaces the handler.
// - Synchronous delivery: HandleEvent and Broadcast invoke handlers in the
//   caller goroutine before returning. A handler may itself broadcast; the
//   nested delivery runs to completion first. There is no re-entrancy guard.
// - No isolation: handlers share the event value. If one handler mutates it,
//   later handlers observe the mutation.
// - Silent absence: delivering an event type nobody registered for is a
//   valid no-op, not an error. Handlers have no error return.
// - Caller-serialized: the dispatcher performs no locking. All registration
//   and delivery must happen on a single goroutine, or be serialized by the
//   embedding driver.
//
// Ownership: the dispatcher never takes ownership of events or receivers.
// Events must outlive the synchronous delivery call. Receivers must be
// unregistered (Unregister, or Off per type) before they are discarded;
// the driver is expected to do this from its teardown path.
package dispatch

// Handler is the capability surface registered with a Dispatcher. Any type
// that embeds a Receiver satisfies it.
type Handler interface {
	// EventReceiver returns the embedded per-instance handler table.
	EventReceiver() *Receiver
}

// Observer is notified about each broadcast. Implementations can export
// metrics or logs; they should return quickly. Delivery metrics are only
// accumulated while at least one observer is registered.
type Observer interface {
	OnBroadcast(eventType string, receivers int)
}

// Metrics is a minimal set of delivery counters, updated only while an
// observer is registered.
type Metrics struct {
	Broadcasts uint64
	Deliveries uint64
	Misses     uint64
}
