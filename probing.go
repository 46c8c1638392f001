package bucketmap

import (
	"log/slog"

	"github.com/pkg/errors"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTombstone
)

type probeSlot struct {
	entry Entry
	state slotState
}

// NewProbing returns a new Probing table with the given number of slots.
// It returns ErrInvalidCapacity if capacity is not greater than 0.
//
// The hasher, removal callback and logger options apply as for New.
// The remove policy and capacity guard options are ignored: a Probing
// table always removes single entries and can never hold more entries
// than it has slots.
func NewProbing(capacity int, opts ...Option) (*Probing, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "new probing table with capacity %d", capacity)
	}
	o := newOptions(opts)
	p := &Probing{
		slots: make([]probeSlot, capacity),
		opts:  o,
	}
	if o.log != nil {
		p.log = o.log.With("component", "bucketmap/probing")
	}
	return p, nil
}

// Probing is a hash table with open addressing and linear probing.
// Every entry lives directly in a slot; a key that collides takes
// the next free slot after its home index, wrapping around.
//
// The zero value Probing is NOT ready to use.
// The NewProbing function must be used to create a new Probing.
type Probing struct {
	log   *slog.Logger
	slots []probeSlot
	opts  options
	size  int
	// tombstones counts removed slots that still extend probe sequences.
	tombstones int
}

// IndexOf returns the home slot index of the given key, in [0, Cap()).
func (p *Probing) IndexOf(key string) int {
	return int(p.opts.hasher.Sum64(key) % uint64(len(p.slots)))
}

// lookup probes from the key's home slot. It returns the slot holding key
// (or -1) and the first slot an insert of key could reuse (or -1).
func (p *Probing) lookup(key string) (found, free int) {
	found, free = -1, -1
	n := len(p.slots)
	home := p.IndexOf(key)
	for i := 0; i < n; i++ {
		j := (home + i) % n
		switch s := &p.slots[j]; s.state {
		case slotEmpty:
			if free < 0 {
				free = j
			}
			return found, free
		case slotTombstone:
			if free < 0 {
				free = j
			}
		case slotLive:
			if s.entry.Key == key {
				return j, free
			}
		}
	}
	return found, free
}

// Get returns the entry for the given key.
func (p *Probing) Get(key string) (Entry, bool) {
	i, _ := p.lookup(key)
	if i < 0 {
		return Entry{}, false
	}
	return p.slots[i].entry, true
}

// Insert adds a new entry for the given key.
//
// It returns ErrDuplicateKey if the key is already present
// and ErrAtCapacity if every slot holds an entry.
func (p *Probing) Insert(key, val string) error {
	if p.size == len(p.slots) {
		return errors.Wrapf(ErrAtCapacity, "insert %q", key)
	}
	found, free := p.lookup(key)
	if found >= 0 {
		return errors.Wrapf(ErrDuplicateKey, "insert %q", key)
	}
	if free < 0 {
		// Unreachable while size < capacity.
		return errors.Wrapf(ErrAtCapacity, "insert %q", key)
	}
	s := &p.slots[free]
	if s.state == slotTombstone {
		p.tombstones--
	}
	s.entry = Entry{Key: key, Value: val}
	s.state = slotLive
	p.size++
	return nil
}

// Remove removes the entry for the given key.
// It is a NOP if the key is not present.
//
// If a removal callback is set, it is called for the removed entry.
func (p *Probing) Remove(key string) {
	i, _ := p.lookup(key)
	if i < 0 {
		return
	}
	s := &p.slots[i]
	e := s.entry
	s.entry = Entry{}
	s.state = slotTombstone
	p.size--
	p.tombstones++
	if p.size == 0 && p.tombstones > 0 {
		if p.log != nil {
			p.log.Debug("tombstones cleared", "count", p.tombstones)
		}
		p.reset()
	}
	if p.opts.onRemoval != nil {
		p.opts.onRemoval(e.Key, e.Value, RemovalReasonRemoved)
	}
}

// RemoveAll removes all entries.
//
// If a removal callback is set, it is called for each removed entry.
func (p *Probing) RemoveAll() {
	removed := p.slots
	p.slots = make([]probeSlot, len(removed))
	p.size = 0
	p.tombstones = 0
	if p.opts.onRemoval == nil {
		return
	}
	for _, s := range removed {
		if s.state == slotLive {
			p.opts.onRemoval(s.entry.Key, s.entry.Value, RemovalReasonCleared)
		}
	}
}

// reset marks every slot empty. It is only valid when size is 0.
func (p *Probing) reset() {
	for i := range p.slots {
		p.slots[i] = probeSlot{}
	}
	p.tombstones = 0
}

// Len returns the number of entries in the table.
func (p *Probing) Len() int {
	return p.size
}

// Cap returns the number of slots in the table.
func (p *Probing) Cap() int {
	return len(p.slots)
}
