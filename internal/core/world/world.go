package world

import (
	"go.uber.org/zap"

	"github.com/simforge/simforge/internal/core/entity"
	"github.com/simforge/simforge/internal/core/events/dispatch"
	"github.com/simforge/simforge/internal/core/registry"
	"github.com/simforge/simforge/internal/observability/log"
)

// World is the driver-owned context of a simulation: it holds the event
// dispatcher, the roster of live entities and the ordered list of systems.
// Its lifetime bounds the dispatcher's, which is what lets teardown paths
// unregister receivers instead of leaving dangling directory entries.
//
// The world is caller-serialized like everything beneath it: confine it to
// one simulation goroutine.
type World struct {
	cfg        Config
	log        log.Log
	dispatcher *dispatch.Dispatcher
	entities   *registry.Roster[*entity.Entity]
	systems    []System
	ticks      uint64
}

// New creates a world. A nil logger disables framework logging.
func New(cfg Config, logger log.Log) *World {
	if logger == nil {
		logger = log.Nop()
	}
	if cfg.Name != "" {
		logger = logger.With(zap.String("world", cfg.Name))
	}

	w := &World{
		cfg:        cfg,
		log:        logger,
		dispatcher: dispatch.New(),
		entities:   registry.NewRoster[*entity.Entity](),
	}

	w.entities.OnAdd(func(e *entity.Entity) {
		w.log.Debug("entity added", zap.String("entity", e.ID()))
	})
	w.entities.OnRemove(func(e *entity.Entity) {
		w.log.Debug("entity removed", zap.String("entity", e.ID()))
	})

	if cfg.TraceDispatch {
		w.dispatcher.AddObserver(&traceObserver{log: w.log})
	}

	return w
}

// Dispatcher exposes the world's event dispatcher.
func (w *World) Dispatcher() *dispatch.Dispatcher { return w.dispatcher }

// Entities exposes the roster of live entities.
func (w *World) Entities() *registry.Roster[*entity.Entity] { return w.entities }

// NewEntity creates an entity and adds it to the roster.
func (w *World) NewEntity() *entity.Entity {
	e := entity.New()
	w.entities.Add(e)
	return e
}

// Adopt adds an externally constructed entity to the roster.
func (w *World) Adopt(e *entity.Entity) {
	w.entities.Add(e)
}

// DestroyEntity removes e from the roster and scrubs every dispatcher
// directory entry pointing at it, so no later broadcast can reach it.
// Reports whether the entity was live.
func (w *World) DestroyEntity(e *entity.Entity) bool {
	w.dispatcher.Unregister(e)
	return w.entities.Remove(e)
}

// AddSystem appends a system to the execution order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// RemoveSystem drops the first identical system and unregisters it from
// the dispatcher if it carries the event capability.
func (w *World) RemoveSystem(s System) bool {
	for i, have := range w.systems {
		if have == s {
			w.systems = append(w.systems[:i], w.systems[i+1:]...)
			if h, ok := s.(dispatch.Handler); ok {
				w.dispatcher.Unregister(h)
			}
			return true
		}
	}
	return false
}

// Step runs one simulation tick: every system's Execute, in insertion
// order, synchronously.
func (w *World) Step() {
	w.ticks++
	for _, s := range w.systems {
		s.Execute()
	}
}

// Ticks returns the number of completed Step calls.
func (w *World) Ticks() uint64 { return w.ticks }

// Broadcast forwards to the world's dispatcher.
func (w *World) Broadcast(event any) {
	w.dispatcher.Broadcast(event)
}

// FindByTag returns the live entities carrying the tag, in construction
// order. The result is a snapshot; destroying entries while walking it is
// safe.
func (w *World) FindByTag(tag string) []*entity.Entity {
	return w.entities.Snapshot().
		Filter(func(e *entity.Entity) bool { return e.HasTag(tag) }).
		Collect()
}

type traceObserver struct {
	log log.Log
}

func (o *traceObserver) OnBroadcast(eventType string, receivers int) {
	o.log.Debug("broadcast",
		zap.String("event", eventType),
		zap.Int("receivers", receivers))
}
