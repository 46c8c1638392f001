package bucketmap

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// Hasher64 is the interface that wraps the Sum64 method.
type Hasher64 interface {
	// Sum64 returns the 64-bit hash of the input key.
	// It must return the same digest for the same key for as long
	// as the hasher is used by a table.
	Sum64(key string) uint64
}

// DefaultHasher64 is the default Hasher64 used by a Table.
// It uses the xxHash algorithm and is stable across processes.
type DefaultHasher64 struct{}

// Sum64 returns the xxHash digest of key.
func (DefaultHasher64) Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}

// FNVHasher64 is a Hasher64 that uses the FNV-1a algorithm.
type FNVHasher64 struct{}

// Sum64 returns the FNV-1a digest of key.
func (FNVHasher64) Sum64(key string) uint64 {
	h := fnv.New64a()
	// Write on a hash.Hash never returns an error.
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

// NewSeededHasher64 returns a new Hasher64 seeded with a random seed.
// The seed is chosen once, so the returned Hasher64 is deterministic
// for its own lifetime, but two hashers (or two runs of the same
// program) map the same key to different digests.
func NewSeededHasher64() Hasher64 {
	return seededHasher64{h: maphash.NewHasher[string]()}
}

type seededHasher64 struct {
	h maphash.Hasher[string]
}

func (s seededHasher64) Sum64(key string) uint64 {
	return s.h.Hash(key)
}
