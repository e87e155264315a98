package wordfreq

// Entry is a distinct key with its occurrence count
type Entry struct {
	Key   string
	Count int
}

// Chain is the collision list of one bucket.
// Keys inside a chain are pairwise distinct.
type Chain struct {
	entries []Entry
}

// InsertOrIncrement increments the count of key if it is already in the chain,
// otherwise appends a new entry with count = 1 at the tail.
// Returns true if a new entry was created.
func (c *Chain) InsertOrIncrement(key string) bool {
	for i := range c.entries {
		if c.entries[i].Key == key {
			c.entries[i].Count++
			return false
		}
	}

	c.entries = append(c.entries, Entry{
		Key:   key,
		Count: 1,
	})
	return true
}

// Len returns the number of entries
func (c *Chain) Len() int {
	return len(c.entries)
}

// ForEachEntry visits entries from head to tail
func (c *Chain) ForEachEntry(fn func(e Entry)) {
	for _, e := range c.entries {
		fn(e)
	}
}

// Entries returns a copy of the entries in chain order
func (c *Chain) Entries() []Entry {
	result := make([]Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

func (c *Chain) find(key string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// migrateInto appends every entry (head to tail) to its chain in buckets.
// The caller reverses the destination chains once all sources are migrated,
// which puts every migrated entry at the head of its chain in O(1) each.
func (c *Chain) migrateInto(buckets []Chain, hasher Hasher) {
	for _, e := range c.entries {
		index := bucketIndex(hasher.Hash(e.Key), len(buckets))
		buckets[index].entries = append(buckets[index].entries, e)
	}
}

func (c *Chain) reverse() {
	for i, j := 0, len(c.entries)-1; i < j; i, j = i+1, j-1 {
		c.entries[i], c.entries[j] = c.entries[j], c.entries[i]
	}
}

// ChainView is a read only view of a chain owned by a Table
type ChainView struct {
	chain *Chain
}

// Len ...
func (v ChainView) Len() int {
	return v.chain.Len()
}

// ForEachEntry visits entries from head to tail
func (v ChainView) ForEachEntry(fn func(e Entry)) {
	v.chain.ForEachEntry(fn)
}

// Entries returns a copy of the entries in chain order
func (v ChainView) Entries() []Entry {
	return v.chain.Entries()
}
