package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/corpuschat/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore keeps serialised corpora in memory, keyed by path.
// It encodes with jsonfile.Encode, so bytes match what the file store writes.
type CorpusStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		files: make(map[string][]byte),
	}
}

// Save serialises records under path, replacing any previous content.
func (s *CorpusStore) Save(path string, records []domain.Record) error {
	data, err := jsonfile.Encode(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

// Load returns the bytes stored under path.
func (s *CorpusStore) Load(path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", path, domain.ErrMissingCorpus)
	}
	return append([]byte(nil), data...), nil
}

// Put stores raw bytes under path.
func (s *CorpusStore) Put(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), data...)
}
