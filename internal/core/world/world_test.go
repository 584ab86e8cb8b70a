package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simforge/simforge/internal/core/events/dispatch"
)

type tickEvent struct {
	N uint64
}

type recordingSystem struct {
	BaseSystem
	name string
	log  *[]string
}

func (s *recordingSystem) Execute() {
	*s.log = append(*s.log, s.name)
}

func TestStepRunsSystemsInInsertionOrder(t *testing.T) {
	w := New(Config{Name: "test"}, nil)
	var order []string
	w.AddSystem(&recordingSystem{name: "physics", log: &order})
	w.AddSystem(&recordingSystem{name: "render", log: &order})

	w.Step()
	w.Step()

	require.Equal(t, []string{"physics", "render", "physics", "render"}, order)
	require.Equal(t, uint64(2), w.Ticks())
}

func TestEntityLifecycle(t *testing.T) {
	w := New(Config{}, nil)
	e := w.NewEntity()
	require.Equal(t, 1, w.Entities().Len())
	require.True(t, w.Entities().Contains(e))

	require.True(t, w.DestroyEntity(e))
	require.Equal(t, 0, w.Entities().Len())
	require.False(t, w.DestroyEntity(e))
}

func TestDestroyEntityUnregistersFromDispatch(t *testing.T) {
	w := New(Config{}, nil)
	e := w.NewEntity()

	hits := 0
	dispatch.On(w.Dispatcher(), e, func(ev *tickEvent) { hits++ })

	w.Broadcast(&tickEvent{N: 1})
	require.Equal(t, 1, hits)

	w.DestroyEntity(e)
	w.Broadcast(&tickEvent{N: 2})
	require.Equal(t, 1, hits, "destroyed entity must not receive broadcasts")
}

func TestRemoveSystemUnregisters(t *testing.T) {
	w := New(Config{}, nil)
	var order []string
	s := &recordingSystem{name: "ai", log: &order}
	w.AddSystem(s)

	hits := 0
	dispatch.On(w.Dispatcher(), s, func(ev *tickEvent) { hits++ })

	require.True(t, w.RemoveSystem(s))
	require.False(t, w.RemoveSystem(s))

	w.Step()
	w.Broadcast(&tickEvent{})
	require.Empty(t, order)
	require.Zero(t, hits)
}

func TestFindByTag(t *testing.T) {
	w := New(Config{}, nil)
	a := w.NewEntity()
	a.AddTag("enemy")
	b := w.NewEntity()
	b.AddTag("enemy")
	w.NewEntity().AddTag("scenery")

	enemies := w.FindByTag("enemy")
	require.Len(t, enemies, 2)
	require.Same(t, a, enemies[0])
	require.Same(t, b, enemies[1])
	require.Empty(t, w.FindByTag("boss"))
}

func TestTraceDispatchEnablesMetrics(t *testing.T) {
	w := New(Config{TraceDispatch: true}, nil)
	e := w.NewEntity()
	dispatch.On(w.Dispatcher(), e, func(ev *tickEvent) {})

	w.Broadcast(&tickEvent{})
	m := w.Dispatcher().GetMetrics()
	require.Equal(t, uint64(1), m.Broadcasts)
	require.Equal(t, uint64(1), m.Deliveries)
}
