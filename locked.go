package bucketmap

import "sync"

// NewLocked returns a new Locked wrapping s.
// It panics if s is nil.
func NewLocked(s Store) *Locked {
	if s == nil {
		panic("bucketmap: store must be not nil")
	}
	return &Locked{s: s}
}

// Locked is a Store safe for concurrent use by multiple goroutines.
// It serializes writers and lets readers share the wrapped Store.
//
// The zero value Locked is NOT ready to use.
// The NewLocked function must be used to create a new Locked.
type Locked struct {
	s  Store
	mu sync.RWMutex
}

// Get returns the entry for the given key.
func (l *Locked) Get(key string) (Entry, bool) {
	l.mu.RLock()
	e, ok := l.s.Get(key)
	l.mu.RUnlock()
	return e, ok
}

// Insert adds a new entry for the given key.
func (l *Locked) Insert(key, val string) error {
	l.mu.Lock()
	err := l.s.Insert(key, val)
	l.mu.Unlock()
	return err
}

// Remove removes the entry for the given key.
//
// A removal callback set on the wrapped Store runs while the lock is held
// and must not call back into l.
func (l *Locked) Remove(key string) {
	l.mu.Lock()
	l.s.Remove(key)
	l.mu.Unlock()
}

// Len returns the number of entries in the wrapped Store.
func (l *Locked) Len() int {
	l.mu.RLock()
	n := l.s.Len()
	l.mu.RUnlock()
	return n
}
