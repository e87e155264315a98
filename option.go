package wordfreq

// DefaultBucketCount is a power of two, doubling keeps every later size a power of two
const DefaultBucketCount = 8

type tableConfig struct {
	hasher   Hasher
	onRehash func(oldBucketCount int, newBucketCount int)
}

func computeTableConfig(options []Option) tableConfig {
	conf := tableConfig{
		hasher:   Murmur3Hasher{},
		onRehash: func(oldBucketCount int, newBucketCount int) {},
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option ...
type Option func(conf *tableConfig)

// WithHasher replaces the default murmur3 hasher
func WithHasher(hasher Hasher) Option {
	return func(conf *tableConfig) {
		conf.hasher = hasher
	}
}

// WithRehashObserver is called after each rehash, when the new bucket array is in place
func WithRehashObserver(fn func(oldBucketCount int, newBucketCount int)) Option {
	return func(conf *tableConfig) {
		conf.onRehash = fn
	}
}
