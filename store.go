package bucketmap

// Store is the interface that wraps the basic keyed store operations.
//
// Implementations differ in how they resolve collisions, not in what
// the operations mean: Insert never replaces an existing entry, and
// Get and Remove on a missing key are not errors.
type Store interface {
	// Get returns the entry for the given key.
	// It returns false if the key is not present.
	Get(key string) (Entry, bool)
	// Insert adds a new entry for the given key.
	// It returns ErrDuplicateKey if the key is already present
	// and ErrAtCapacity if the store cannot take another entry.
	Insert(key, val string) error
	// Remove removes the entry for the given key.
	// It is a NOP if the key is not present.
	Remove(key string)
	// Len returns the number of entries in the store.
	Len() int
}

var (
	_ Store = (*Table)(nil)
	_ Store = (*Probing)(nil)
	_ Store = (*Locked)(nil)
)
