package wordfreq

// Table counts occurrences of string keys using separate chaining.
// It is NOT safe for concurrent use, see SyncTable.
type Table struct {
	buckets []Chain
	size    int

	rehashes int

	hasher   Hasher
	onRehash func(oldBucketCount int, newBucketCount int)
}

// New creates a table with initialBucketCount empty chains
func New(initialBucketCount int, options ...Option) (*Table, error) {
	if initialBucketCount <= 0 {
		return nil, ErrInvalidBucketCount
	}

	conf := computeTableConfig(options)

	return &Table{
		buckets:  make([]Chain, initialBucketCount),
		size:     0,
		hasher:   conf.hasher,
		onRehash: conf.onRehash,
	}, nil
}

// InsertOrIncrement adds key with count = 1 or increments its count.
// The table is doubled when the number of distinct keys reaches the bucket count.
func (t *Table) InsertOrIncrement(key string) {
	index := bucketIndex(t.hasher.Hash(key), len(t.buckets))
	if t.buckets[index].InsertOrIncrement(key) {
		t.size++
	}

	// integer division: only triggers when size >= bucket count
	if t.size/len(t.buckets) >= 1 {
		t.rehash()
	}
}

func (t *Table) rehash() {
	oldBucketCount := len(t.buckets)

	t.buckets = rehashBuckets(t.buckets, 2*oldBucketCount, t.hasher)
	t.rehashes++

	t.onRehash(oldBucketCount, len(t.buckets))
}

// rehashBuckets migrates chains in bucket index order into a new array of newBucketCount chains.
// Each migrated entry ends up at the head of its destination chain.
func rehashBuckets(buckets []Chain, newBucketCount int, hasher Hasher) []Chain {
	result := make([]Chain, newBucketCount)
	for i := range buckets {
		buckets[i].migrateInto(result, hasher)
	}
	for i := range result {
		result[i].reverse()
	}
	return result
}

// Size returns the number of distinct keys
func (t *Table) Size() int {
	return t.size
}

// BucketCount returns the current number of buckets
func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// Rehashes returns the number of rehashes performed so far
func (t *Table) Rehashes() int {
	return t.rehashes
}

// AverageChainLength = distinct keys / bucket count, the current load factor
func (t *Table) AverageChainLength() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Count returns the count of key
func (t *Table) Count(key string) (int, bool) {
	index := bucketIndex(t.hasher.Hash(key), len(t.buckets))
	e, ok := t.buckets[index].find(key)
	return e.Count, ok
}

// ForEachBucket visits buckets from index 0 to BucketCount() - 1.
// fn must not call InsertOrIncrement.
func (t *Table) ForEachBucket(fn func(index int, chain ChainView)) {
	for i := range t.buckets {
		fn(i, ChainView{chain: &t.buckets[i]})
	}
}

// ForEachEntry visits every entry in bucket order then chain order
func (t *Table) ForEachEntry(fn func(e Entry)) {
	for i := range t.buckets {
		t.buckets[i].ForEachEntry(fn)
	}
}
