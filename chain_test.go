package wordfreq

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestChain_InsertOrIncrement(t *testing.T) {
	t.Run("empty chain", func(t *testing.T) {
		c := &Chain{}
		assert.Equal(t, true, c.InsertOrIncrement("a"))
		assert.Equal(t, []Entry{{Key: "a", Count: 1}}, c.Entries())
	})

	t.Run("existing key", func(t *testing.T) {
		c := &Chain{}
		c.InsertOrIncrement("a")
		c.InsertOrIncrement("b")

		assert.Equal(t, false, c.InsertOrIncrement("b"))
		assert.Equal(t, false, c.InsertOrIncrement("a"))
		assert.Equal(t, false, c.InsertOrIncrement("b"))

		assert.Equal(t, []Entry{
			{Key: "a", Count: 2},
			{Key: "b", Count: 3},
		}, c.Entries())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("new key appended at tail", func(t *testing.T) {
		c := &Chain{}
		c.InsertOrIncrement("a")
		c.InsertOrIncrement("b")
		assert.Equal(t, true, c.InsertOrIncrement("c"))

		assert.Equal(t, []Entry{
			{Key: "a", Count: 1},
			{Key: "b", Count: 1},
			{Key: "c", Count: 1},
		}, c.Entries())
	})
}

func TestChain_ForEachEntry(t *testing.T) {
	c := &Chain{}
	c.InsertOrIncrement("x")
	c.InsertOrIncrement("y")
	c.InsertOrIncrement("x")

	var visited []Entry
	c.ForEachEntry(func(e Entry) {
		visited = append(visited, e)
	})
	assert.Equal(t, []Entry{
		{Key: "x", Count: 2},
		{Key: "y", Count: 1},
	}, visited)
}

func TestChain_Entries_Is_A_Copy(t *testing.T) {
	c := &Chain{}
	c.InsertOrIncrement("x")

	entries := c.Entries()
	entries[0].Count = 100

	e, ok := c.find("x")
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, e.Count)
}

func TestRehashBuckets(t *testing.T) {
	hasher := HasherFunc(func(key string) uint64 {
		switch key {
		case "a":
			return 1
		case "b":
			return 3
		case "c":
			return 5
		case "z":
			return 9
		default:
			return 0
		}
	})

	buckets := make([]Chain, 2)
	buckets[0].InsertOrIncrement("z")
	buckets[1].InsertOrIncrement("a")
	buckets[1].InsertOrIncrement("b")
	buckets[1].InsertOrIncrement("b")
	buckets[1].InsertOrIncrement("c")

	result := rehashBuckets(buckets, 4, hasher)

	assert.Equal(t, 4, len(result))
	assert.Equal(t, 0, result[0].Len())
	// every migrated entry is put at the head, sources scanned in bucket order
	assert.Equal(t, []Entry{
		{Key: "c", Count: 1},
		{Key: "a", Count: 1},
		{Key: "z", Count: 1},
	}, result[1].Entries())
	assert.Equal(t, 0, result[2].Len())
	assert.Equal(t, []Entry{
		{Key: "b", Count: 2},
	}, result[3].Entries())

	// source chains are not modified
	assert.Equal(t, 1, buckets[0].Len())
	assert.Equal(t, 3, buckets[1].Len())
}

func TestRehashBuckets_Long_Chain(t *testing.T) {
	hasher := HasherFunc(func(key string) uint64 {
		return 0
	})

	buckets := make([]Chain, 1)
	var keys []string
	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("key%04d", i)
		keys = append(keys, key)
		buckets[0].InsertOrIncrement(key)
	}

	result := rehashBuckets(buckets, 2, hasher)
	assert.Equal(t, 0, result[1].Len())

	entries := result[0].Entries()
	assert.Equal(t, 1000, len(entries))
	for i, e := range entries {
		assert.Equal(t, keys[len(keys)-1-i], e.Key)
	}
}
