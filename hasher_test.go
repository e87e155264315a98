package wordfreq

import (
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMurmur3Hasher(t *testing.T) {
	h := Murmur3Hasher{}
	assert.Equal(t, uint64(0xf79fb6105ae9c754), h.Hash("key01"))
	assert.Equal(t, murmur3.Sum64([]byte("hello")), h.Hash("hello"))
	assert.NotEqual(t, h.Hash("hello"), h.Hash("hellp"))
}

func TestXXHasher(t *testing.T) {
	h := XXHasher{}
	assert.Equal(t, uint64(0xef46db3751d8e999), h.Hash(""))
	assert.Equal(t, h.Hash("hello"), h.Hash("hello"))
	assert.NotEqual(t, h.Hash("hello"), h.Hash("hellp"))
}

func TestBucketIndex(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		assert.Equal(t, 3, bucketIndex(11, 8))
		assert.Equal(t, 0, bucketIndex(16, 8))
	})

	t.Run("highest bit set", func(t *testing.T) {
		index := bucketIndex(0xffff_ffff_ffff_ffff, 10)
		assert.Equal(t, 5, index)
	})

	t.Run("always in range", func(t *testing.T) {
		h := Murmur3Hasher{}
		for _, key := range []string{"", "a", "the", "collision", "key01"} {
			for _, n := range []int{1, 2, 8, 31, 1024} {
				index := bucketIndex(h.Hash(key), n)
				assert.GreaterOrEqual(t, index, 0)
				assert.Less(t, index, n)
			}
		}
	})
}

func TestBucketIndex_Distribution_Power_Of_Two(t *testing.T) {
	const numBuckets = 64
	const numKeys = 64 * 100

	var counts [numBuckets]int
	h := Murmur3Hasher{}
	for i := 0; i < numKeys; i++ {
		key := string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+(i/676)%26))
		counts[bucketIndex(h.Hash(key), numBuckets)]++
	}

	for _, c := range counts {
		assert.Greater(t, c, 40)
		assert.Less(t, c, 170)
	}
}

func TestHasherFunc(t *testing.T) {
	h := HasherFunc(func(key string) uint64 {
		return uint64(len(key))
	})
	assert.Equal(t, uint64(5), h.Hash("hello"))
}
