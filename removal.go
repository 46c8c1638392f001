package bucketmap

// RemovePolicy decides what Table.Remove takes out of a bucket.
type RemovePolicy int32

const (
	// RemoveEntry removes only the entry matching the key.
	// Other entries sharing the bucket stay reachable.
	RemoveEntry RemovePolicy = iota
	// RemoveBucket removes the whole chain at the key's bucket,
	// including every entry that merely collides with the key.
	// The chain is dropped even if the key itself is not present.
	RemoveBucket
)

func (p RemovePolicy) String() string {
	switch p {
	case RemoveEntry:
		return "entry"
	case RemoveBucket:
		return "bucket"
	default:
		return "unknown"
	}
}

// RemovalReason is the reason why an entry was removed.
type RemovalReason int32

const (
	// RemovalReasonRemoved indicates that the entry was removed
	// because its key was passed to Remove.
	RemovalReasonRemoved RemovalReason = iota + 1
	// RemovalReasonCollateral indicates that the entry was removed
	// because it shared a bucket with the key passed to Remove
	// and the table uses the RemoveBucket policy.
	RemovalReasonCollateral
	// RemovalReasonCleared indicates that the entry was removed by RemoveAll.
	RemovalReasonCleared
)

func (r RemovalReason) String() string {
	switch r {
	case RemovalReasonRemoved:
		return "removed"
	case RemovalReasonCollateral:
		return "collateral"
	case RemovalReasonCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// RemovalCallback is the callback function that is called for every entry
// taken out of a table. It runs synchronously, after the table has been
// updated, on the goroutine that performed the removal.
type RemovalCallback func(key, val string, reason RemovalReason)
