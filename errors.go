package bucketmap

import "github.com/pkg/errors"

var (
	// ErrInvalidCapacity is returned when a table is created with
	// a capacity that is not greater than 0.
	ErrInvalidCapacity = errors.New("bucketmap: capacity must be greater than 0")
	// ErrAtCapacity is returned by Insert when the table holds as many
	// entries as it has slots and no further entry can be stored.
	ErrAtCapacity = errors.New("bucketmap: table at capacity")
	// ErrDuplicateKey is returned by Insert when the key is already present.
	// Insert never replaces an existing entry.
	ErrDuplicateKey = errors.New("bucketmap: duplicate key")
)
