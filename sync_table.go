package wordfreq

import (
	"context"
	"io"
	"sync"
)

// SyncTable guards a Table with a single mutex.
// Insert and rehash never run concurrently with each other or with readers.
type SyncTable struct {
	mut   sync.Mutex
	table *Table
}

// NewSyncTable ...
func NewSyncTable(initialBucketCount int, options ...Option) (*SyncTable, error) {
	t, err := New(initialBucketCount, options...)
	if err != nil {
		return nil, err
	}
	return &SyncTable{
		table: t,
	}, nil
}

// InsertOrIncrement ...
func (s *SyncTable) InsertOrIncrement(key string) {
	s.mut.Lock()
	s.table.InsertOrIncrement(key)
	s.mut.Unlock()
}

// InsertLine tokenizes outside the lock, then inserts all tokens of the line under one lock
func (s *SyncTable) InsertLine(line string) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	for _, token := range tokens {
		s.table.InsertOrIncrement(token)
	}
}

// View calls fn while holding the lock, fn must not keep t after returning
func (s *SyncTable) View(fn func(t *Table)) {
	s.mut.Lock()
	defer s.mut.Unlock()

	fn(s.table)
}

// LoadReaders reads every reader in its own goroutine.
// Returns the first error, counts of readers that succeeded are kept.
func (s *SyncTable) LoadReaders(ctx context.Context, readers ...io.Reader) error {
	var wg sync.WaitGroup
	errList := make([]error, len(readers))

	wg.Add(len(readers))
	for i, r := range readers {
		go func(i int, r io.Reader) {
			defer wg.Done()
			errList[i] = loadLines(ctx, r, s.InsertLine)
		}(i, r)
	}
	wg.Wait()

	for _, err := range errList {
		if err != nil {
			return err
		}
	}
	return nil
}
