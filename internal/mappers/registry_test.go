package mappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

type stubMapper struct {
	dataset domain.Dataset
}

func (s *stubMapper) Dataset() domain.Dataset { return s.dataset }

func (s *stubMapper) Map(_ *domain.RawRecord) (domain.Record, error) { return nil, nil }

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, []domain.Dataset{domain.DatasetCharacters, domain.DatasetPokemon}, r.Datasets())

	for _, d := range domain.AllDatasets() {
		m, err := r.Get(d)
		require.NoError(t, err)
		assert.Equal(t, d, m.Dataset())
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("digimon")

	assert.True(t, errors.Is(err, domain.ErrUnsupportedDataset))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewDefaultRegistry()
	stub := &stubMapper{dataset: domain.DatasetPokemon}

	r.Register(stub)

	m, err := r.Get(domain.DatasetPokemon)
	require.NoError(t, err)
	assert.Same(t, stub, m)
}
