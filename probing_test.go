package bucketmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNewProbing(t *testing.T, capacity int, opts ...Option) *Probing {
	t.Helper()
	p, err := NewProbing(capacity, opts...)
	require.NoError(t, err)
	return p
}

func TestProbing_Collisions(t *testing.T) {
	// Every key starts probing at slot 2 and wraps around.
	p := mustNewProbing(t, 3, WithHasherOption(constHasher(2)))
	mustInsert(t, p, "a", "b", "c")
	require.Equal(t, probeSlot{Entry{"a", "a"}, slotLive}, p.slots[2])
	require.Equal(t, probeSlot{Entry{"b", "b"}, slotLive}, p.slots[0])
	require.Equal(t, probeSlot{Entry{"c", "c"}, slotLive}, p.slots[1])
	for _, key := range []string{"a", "b", "c"} {
		e, ok := p.Get(key)
		require.True(t, ok)
		require.Equal(t, key, e.Value)
	}
	_, ok := p.Get("d")
	require.False(t, ok)
}

func TestProbing_AtCapacity(t *testing.T) {
	p := mustNewProbing(t, 2)
	mustInsert(t, p, "a", "b")
	require.ErrorIs(t, p.Insert("c", "c"), ErrAtCapacity)
	p.Remove("a")
	require.NoError(t, p.Insert("c", "c"))
	require.Equal(t, 2, p.Len())
}

func TestProbing_Remove_KeepsProbeSequence(t *testing.T) {
	p := mustNewProbing(t, 4, WithHasherOption(constHasher(0)))
	mustInsert(t, p, "a", "b", "c")
	p.Remove("b")
	require.Equal(t, slotTombstone, p.slots[1].state)

	// c sits behind the tombstone and must still be found.
	e, ok := p.Get("c")
	require.True(t, ok)
	require.Equal(t, "c", e.Value)
	require.ErrorIs(t, p.Insert("c", "again"), ErrDuplicateKey)

	// A new key reuses the tombstone.
	require.NoError(t, p.Insert("d", "d"))
	require.Equal(t, probeSlot{Entry{"d", "d"}, slotLive}, p.slots[1])
	require.Equal(t, 0, p.tombstones)
	require.Equal(t, 3, p.Len())
}

func TestProbing_Remove_AllTombstones(t *testing.T) {
	p := mustNewProbing(t, 2, WithHasherOption(constHasher(0)))
	mustInsert(t, p, "a", "b")
	p.Remove("a")
	p.Remove("b")
	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, p.tombstones)
	for _, s := range p.slots {
		require.Equal(t, slotEmpty, s.state)
	}
	mustInsert(t, p, "b", "a")
	require.Equal(t, 2, p.Len())
}

func TestProbing_Remove_NotPresent_FullTable(t *testing.T) {
	// With no empty slot a miss scans the whole table and stops.
	p := mustNewProbing(t, 2)
	mustInsert(t, p, "a", "b")
	p.Remove("c")
	_, ok := p.Get("c")
	require.False(t, ok)
	require.Equal(t, 2, p.Len())
}

func TestProbing_RemovalCallback(t *testing.T) {
	m := &removalCallbackMock{}
	p := mustNewProbing(t, 4, WithRemovalCallbackOption(m.Callback), WithRemovePolicyOption(RemoveBucket))
	mustInsert(t, p, "a", "b", "c")
	p.Remove("a")
	p.Remove("a")
	require.Equal(t, 2, p.Len())
	p.RemoveAll()
	require.Equal(t, 0, p.Len())
	require.Len(t, m.calls, 3)
	require.Equal(t, removalCall{"a", "a", RemovalReasonRemoved}, m.calls[0])
	require.ElementsMatch(t, []removalCall{
		{"b", "b", RemovalReasonCleared},
		{"c", "c", RemovalReasonCleared},
	}, m.calls[1:])
}

func TestProbing_Cap(t *testing.T) {
	p := mustNewProbing(t, 7)
	require.Equal(t, 7, p.Cap())
}
