// Package bucketmap provides a fixed-capacity hash table
// of string keys and string values.
//
// A Table has a fixed number of slots (buckets) chosen at construction.
// A key is mapped to a slot by reducing its 64-bit digest modulo
// the capacity, and keys that land in the same slot are kept in a chain.
// The table never resizes itself; Rehash builds a new table on request.
//
// The New function creates a new chaining table.
//
// The NewProbing function creates a new open addressing table.
// Both implement the Store interface.
//
// Tables are not safe for concurrent use. Wrap a Store with NewLocked
// to share it between goroutines.
package bucketmap

import (
	"log/slog"

	"github.com/pkg/errors"
)

// New returns a new Table with the given number of slots.
// It returns ErrInvalidCapacity if capacity is not greater than 0.
//
// By default, a returned Table uses the DefaultHasher64, removes single
// entries, has no capacity guard, no removal callback and no logger.
//
// Option(s) can be used to customize the returned Table.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "new table with capacity %d", capacity)
	}
	return newTable(capacity, newOptions(opts)), nil
}

func newTable(capacity int, opts options) *Table {
	t := &Table{
		slots: make([]*chain, capacity),
		opts:  opts,
	}
	if opts.log != nil {
		t.log = opts.log.With("component", "bucketmap/table")
	}
	return t
}

// Table is a hash table with separate chaining.
//
// The zero value Table is NOT ready to use.
// The New function must be used to create a new Table.
//
// Example:
//
//	t, err := bucketmap.New(64,
//		bucketmap.WithCapacityGuardOption(),
//		bucketmap.WithRemovalCallbackOption(LogRemovedEntry),
//	)
type Table struct {
	log   *slog.Logger
	slots []*chain
	opts  options
	size  int
}

// IndexOf returns the slot index of the given key, in [0, Cap()).
func (t *Table) IndexOf(key string) int {
	return int(t.opts.hasher.Sum64(key) % uint64(len(t.slots)))
}

// Get returns the entry for the given key.
func (t *Table) Get(key string) (Entry, bool) {
	c := t.slots[t.IndexOf(key)]
	if c == nil {
		return Entry{}, false
	}
	l := c.find(key)
	if l == nil {
		return Entry{}, false
	}
	return l.entry, true
}

// Insert adds a new entry for the given key.
//
// It returns ErrDuplicateKey if the key is already present; an existing
// entry is never replaced. Remove it first to store a different value.
//
// If the capacity guard is enabled, it returns ErrAtCapacity once Len
// equals Cap, even if the key's bucket is still empty.
func (t *Table) Insert(key, val string) error {
	if t.opts.guard && t.size == len(t.slots) {
		return errors.Wrapf(ErrAtCapacity, "insert %q", key)
	}
	i := t.IndexOf(key)
	if c := t.slots[i]; c != nil && c.find(key) != nil {
		return errors.Wrapf(ErrDuplicateKey, "insert %q", key)
	}
	t.put(i, Entry{Key: key, Value: val})
	return nil
}

// put appends e to the chain at slot i.
// The caller guarantees that e.Key is not present.
func (t *Table) put(i int, e Entry) {
	if c := t.slots[i]; c != nil {
		c.add(e)
	} else {
		t.slots[i] = newChain(e)
	}
	t.size++
}

// Remove removes the entry for the given key.
// It is a NOP if the key's bucket is empty.
//
// With the RemoveBucket policy every entry sharing the key's bucket
// is removed as well, and the bucket is emptied even if the key itself
// is not present.
//
// If a removal callback is set, it is called for each removed entry.
func (t *Table) Remove(key string) {
	i := t.IndexOf(key)
	c := t.slots[i]
	if c == nil {
		return
	}
	if t.opts.policy == RemoveBucket {
		t.slots[i] = nil
		t.size -= c.len()
		if t.log != nil && c.len() > 1 {
			t.log.Debug("bucket evicted", "key", key, "index", i, "entries", c.len())
		}
		if t.opts.onRemoval != nil {
			c.each(func(e Entry) bool {
				reason := RemovalReasonCollateral
				if e.Key == key {
					reason = RemovalReasonRemoved
				}
				t.opts.onRemoval(e.Key, e.Value, reason)
				return true
			})
		}
		return
	}
	e, ok := c.remove(key)
	if !ok {
		return
	}
	if c.len() == 0 {
		t.slots[i] = nil
	}
	t.size--
	if t.opts.onRemoval != nil {
		t.opts.onRemoval(e.Key, e.Value, RemovalReasonRemoved)
	}
}

// RemoveAll removes all entries.
//
// If a removal callback is set, it is called for each removed entry.
func (t *Table) RemoveAll() {
	removed := t.slots
	t.slots = make([]*chain, len(removed))
	t.size = 0
	if t.opts.onRemoval == nil {
		return
	}
	for _, c := range removed {
		if c == nil {
			continue
		}
		c.each(func(e Entry) bool {
			t.opts.onRemoval(e.Key, e.Value, RemovalReasonCleared)
			return true
		})
	}
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return t.size
}

// Cap returns the number of slots in the table.
func (t *Table) Cap() int {
	return len(t.slots)
}

// LoadFactor returns the ratio of entries to slots.
// It exceeds 1 when chains hold more entries than there are slots.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// Range calls f for each entry until f returns false.
// Buckets are visited in slot order and entries within a bucket
// in insertion order.
func (t *Table) Range(f func(Entry) bool) {
	for _, c := range t.slots {
		if c != nil && !c.each(f) {
			return
		}
	}
}

// Entries returns a copy of all entries in Range order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.size)
	t.Range(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Buckets returns the chain length of every slot, 0 for empty slots.
func (t *Table) Buckets() []int {
	lens := make([]int, len(t.slots))
	for i, c := range t.slots {
		if c != nil {
			lens[i] = c.len()
		}
	}
	return lens
}

// Rehash returns a new Table with the given capacity holding all entries
// of t. The new table shares t's options and hasher. t is left unchanged.
//
// It returns ErrInvalidCapacity if capacity is not greater than 0 and
// ErrAtCapacity if the capacity guard is enabled and the entries
// do not fit in capacity slots.
func (t *Table) Rehash(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "rehash into capacity %d", capacity)
	}
	if t.opts.guard && t.size > capacity {
		return nil, errors.Wrapf(ErrAtCapacity, "rehash %d entries into capacity %d", t.size, capacity)
	}
	nt := newTable(capacity, t.opts)
	t.Range(func(e Entry) bool {
		nt.put(nt.IndexOf(e.Key), e)
		return true
	})
	if t.log != nil {
		t.log.Debug("rehashed", "from", len(t.slots), "to", capacity, "entries", nt.size)
	}
	return nt, nil
}
