package world

import "github.com/simforge/simforge/internal/core/events/dispatch"

// System is a driver-visible simulation stage. Execute is invoked once per
// Step, in the order systems were added; the core does no scheduling
// beyond that.
type System interface {
	Execute()
}

// BaseSystem gives a system the event-handling capability. Embed it and
// register handlers against the world's dispatcher.
type BaseSystem struct {
	dispatch.Receiver
}
