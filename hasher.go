package wordfreq

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

//go:generate moq -rm -out wordfreq_mocks_test.go . Hasher

// Hasher computes the hash of a key.
// Equal keys MUST hash equally, unequal keys should usually hash unequally.
type Hasher interface {
	Hash(key string) uint64
}

// HasherFunc adapts a plain function to Hasher
type HasherFunc func(key string) uint64

// Hash ...
func (f HasherFunc) Hash(key string) uint64 {
	return f(key)
}

// Murmur3Hasher is the default hasher
type Murmur3Hasher struct {
}

// Hash ...
func (Murmur3Hasher) Hash(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// XXHasher uses xxhash 64
type XXHasher struct {
}

// Hash ...
func (XXHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// bucketIndex is always in [0, bucketCount) because the hash is unsigned
func bucketIndex(hash uint64, bucketCount int) int {
	return int(hash % uint64(bucketCount))
}
