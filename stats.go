package wordfreq

// Stats describes how keys are spread over buckets
type Stats struct {
	Size         int
	BucketCount  int
	EmptyBuckets int
	LongestChain int
	Rehashes     int
	LoadFactor   float64
}

// Stats computes the current statistics, not cached
func (t *Table) Stats() Stats {
	result := Stats{
		Size:        t.size,
		BucketCount: len(t.buckets),
		Rehashes:    t.rehashes,
		LoadFactor:  t.AverageChainLength(),
	}

	for i := range t.buckets {
		n := t.buckets[i].Len()
		if n == 0 {
			result.EmptyBuckets++
		}
		if n > result.LongestChain {
			result.LongestChain = n
		}
	}
	return result
}
