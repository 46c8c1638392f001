package bucketmap

// Entry is a key-value pair stored in a table.
// Entries are handed out by value; a stored entry never changes.
type Entry struct {
	Key   string
	Value string
}

type link struct {
	next  *link
	entry Entry
}

// chain is a singly linked list of entries that share a bucket.
// Keys are unique within a chain and entries keep their arrival order.
// A chain is never empty; the table drops it once its last entry goes.
type chain struct {
	head *link
	tail *link
	n    int
}

func newChain(e Entry) *chain {
	l := &link{entry: e}
	return &chain{head: l, tail: l, n: 1}
}

// find returns the link holding key or nil.
func (c *chain) find(key string) *link {
	for l := c.head; l != nil; l = l.next {
		if l.entry.Key == key {
			return l
		}
	}
	return nil
}

// add appends e at the tail. The caller checks key uniqueness.
func (c *chain) add(e Entry) {
	l := &link{entry: e}
	c.tail.next = l
	c.tail = l
	c.n++
}

// remove unlinks the entry with the given key.
func (c *chain) remove(key string) (Entry, bool) {
	var prev *link
	for l := c.head; l != nil; prev, l = l, l.next {
		if l.entry.Key != key {
			continue
		}
		if prev == nil {
			c.head = l.next
		} else {
			prev.next = l.next
		}
		if l == c.tail {
			c.tail = prev
		}
		c.n--
		return l.entry, true
	}
	return Entry{}, false
}

// each calls f for every entry in arrival order until f returns false.
// It reports whether the iteration ran to the end.
func (c *chain) each(f func(Entry) bool) bool {
	for l := c.head; l != nil; l = l.next {
		if !f(l.entry) {
			return false
		}
	}
	return true
}

func (c *chain) len() int {
	return c.n
}
