package wordfreq

// entryHeap is a min heap, the top is the least frequent entry
type entryHeap struct {
	data []Entry
}

func heapParent(index int) int {
	return (index+1)/2 - 1
}

func heapLeftChild(index int) int {
	return index*2 + 1
}

// lessFrequent orders by count, then by key descending, so ties keep the alphabetically first keys
func lessFrequent(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Key > b.Key
}

func (h *entryHeap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *entryHeap) smaller(i, j int) bool {
	return lessFrequent(h.data[i], h.data[j])
}

func (h *entryHeap) push(e Entry) {
	index := len(h.data)
	h.data = append(h.data, e)

	for index > 0 {
		parent := heapParent(index)
		if !h.smaller(index, parent) {
			break
		}
		h.swap(index, parent)
		index = parent
	}
}

func (h *entryHeap) size() int {
	return len(h.data)
}

func (h *entryHeap) top() Entry {
	return h.data[0]
}

func (h *entryHeap) pop() Entry {
	result := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data[last] = Entry{} // clear last
	h.data = h.data[:last]

	index := 0
	for {
		left := heapLeftChild(index)
		right := left + 1

		smallest := index
		if left < len(h.data) && h.smaller(left, smallest) {
			smallest = left
		}
		if right < len(h.data) && h.smaller(right, smallest) {
			smallest = right
		}

		if smallest == index {
			break
		}
		h.swap(index, smallest)
		index = smallest
	}

	return result
}

// TopEntries returns at most n entries with the highest counts.
// Ordered by count descending, then by key ascending.
func (t *Table) TopEntries(n int) []Entry {
	if n <= 0 {
		return nil
	}

	h := &entryHeap{
		data: make([]Entry, 0, n),
	}

	t.ForEachEntry(func(e Entry) {
		if h.size() < n {
			h.push(e)
			return
		}
		if lessFrequent(h.top(), e) {
			h.pop()
			h.push(e)
		}
	})

	result := make([]Entry, h.size())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = h.pop()
	}
	return result
}
