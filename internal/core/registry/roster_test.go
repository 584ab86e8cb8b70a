package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tracked struct {
	name string
}

func TestRosterSizeTracksLiveness(t *testing.T) {
	r := NewRoster[*tracked]()

	var all []*tracked
	for i := 0; i < 5; i++ {
		v := &tracked{}
		all = append(all, v)
		r.Add(v)
	}
	require.Equal(t, 5, r.Len())

	require.True(t, r.Remove(all[1]))
	require.True(t, r.Remove(all[3]))
	require.Equal(t, 3, r.Len())

	// every indexed access returns a currently-live instance
	for i := 0; i < r.Len(); i++ {
		v, ok := r.At(i)
		require.True(t, ok)
		require.Contains(t, []*tracked{all[0], all[2], all[4]}, v)
	}

	// construction order is preserved across removals
	first, _ := r.At(0)
	require.Same(t, all[0], first)
	last, _ := r.At(2)
	require.Same(t, all[4], last)
}

func TestRosterRemoveByIdentity(t *testing.T) {
	r := NewRoster[*tracked]()
	a := &tracked{name: "same"}
	b := &tracked{name: "same"}
	r.Add(a)
	r.Add(b)

	require.True(t, r.Remove(a))
	require.False(t, r.Contains(a))
	require.True(t, r.Contains(b))

	require.False(t, r.Remove(a), "second remove of the same identity is a no-op")
	require.Equal(t, 1, r.Len())
}

func TestRosterAtOutOfRange(t *testing.T) {
	r := NewRoster[*tracked]()
	_, ok := r.At(0)
	require.False(t, ok)
	_, ok = r.At(-1)
	require.False(t, ok)
}

func TestRosterCallbacks(t *testing.T) {
	r := NewRoster[*tracked]()
	var added, removed []*tracked
	r.OnAdd(func(v *tracked) { added = append(added, v) })
	r.OnRemove(func(v *tracked) { removed = append(removed, v) })

	v := &tracked{}
	r.Add(v)
	r.Remove(v)
	r.Remove(v) // miss: no callback

	require.Equal(t, []*tracked{v}, added)
	require.Equal(t, []*tracked{v}, removed)
}

func TestSnapshotSafeDuringMutation(t *testing.T) {
	r := NewRoster[*tracked]()
	for i := 0; i < 4; i++ {
		r.Add(&tracked{})
	}

	seen := 0
	r.Snapshot().Each(func(v *tracked) {
		r.Remove(v)
		seen++
	}).Collect()

	require.Equal(t, 4, seen)
	require.Equal(t, 0, r.Len())
}
