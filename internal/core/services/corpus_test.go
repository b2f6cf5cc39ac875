package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

func TestCorpusService(t *testing.T) {
	store := memory.NewCorpusStore()
	store.Put("c.json", []byte(`[{"id":2,"name":"Morty Smith"},{"id":1,"name":"Rick Sanchez","status":"Alive"}]`))
	svc := NewCorpusService(store)

	entries, err := svc.List("c.json")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].ID)
	assert.Equal(t, "Morty Smith", entries[0].Name)

	entry, err := svc.Get("c.json", 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Rick Sanchez","status":"Alive"}`, string(entry.Raw))

	_, err = svc.Get("c.json", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusService_Errors(t *testing.T) {
	store := memory.NewCorpusStore()
	store.Put("bad.json", []byte(`{"id":1}`))
	svc := NewCorpusService(store)

	_, err := svc.List("missing.json")
	assert.ErrorIs(t, err, domain.ErrMissingCorpus)

	_, err = svc.List("bad.json")
	assert.ErrorIs(t, err, domain.ErrInvalidCorpus)
}
