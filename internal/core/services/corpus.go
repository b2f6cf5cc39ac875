package services

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService reads records back out of persisted corpora.
type CorpusService struct {
	store driven.CorpusStore
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(store driven.CorpusStore) *CorpusService {
	return &CorpusService{store: store}
}

// recordHeader holds the fields every record variant shares.
type recordHeader struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// List returns every record in the corpus at path, in file order.
func (s *CorpusService) List(path string) ([]driving.CorpusEntry, error) {
	data, err := s.store.Load(path)
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCorpus, path, err)
	}

	entries := make([]driving.CorpusEntry, 0, len(raws))
	for i, raw := range raws {
		var h recordHeader
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("%w: %s: record %d: %v", domain.ErrInvalidCorpus, path, i, err)
		}
		entries = append(entries, driving.CorpusEntry{ID: h.ID, Name: h.Name, Raw: raw})
	}
	return entries, nil
}

// Get returns the first record with the given identifier.
func (s *CorpusService) Get(path string, id int) (*driving.CorpusEntry, error) {
	entries, err := s.List(path)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("record %d in %s: %w", id, path, domain.ErrNotFound)
}
