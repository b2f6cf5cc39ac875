package mappers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/mappers/characters"
	"github.com/custodia-labs/corpuschat/internal/mappers/pokemon"
)

// Ensure Registry implements the interface.
var _ driven.MapperRegistry = (*Registry)(nil)

// Registry maps datasets to their mappers.
type Registry struct {
	mu      sync.RWMutex
	mappers map[domain.Dataset]driven.RecordMapper
}

// NewRegistry creates an empty mapper registry.
func NewRegistry() *Registry {
	return &Registry{
		mappers: make(map[domain.Dataset]driven.RecordMapper),
	}
}

// NewDefaultRegistry creates a registry holding the built-in mappers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(pokemon.New())
	r.Register(characters.New())
	return r
}

// Register adds a mapper, replacing any mapper for the same dataset.
func (r *Registry) Register(m driven.RecordMapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers[m.Dataset()] = m
}

// Get returns the mapper for dataset.
func (r *Registry) Get(dataset domain.Dataset) (driven.RecordMapper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mappers[dataset]
	if !ok {
		return nil, fmt.Errorf("no mapper for %q: %w", dataset, domain.ErrUnsupportedDataset)
	}
	return m, nil
}

// Datasets returns all datasets with a registered mapper, sorted by name.
func (r *Registry) Datasets() []domain.Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Dataset, 0, len(r.mappers))
	for d := range r.mappers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
