package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Defaults(t *testing.T) {
	assert.Equal(t, IDRange{Start: 1, End: 100}, DatasetPokemon.DefaultRange())
	assert.Equal(t, "pokemon_data.json", DatasetPokemon.DefaultOutput())
	assert.Equal(t, IDRange{Start: 1, End: 20}, DatasetCharacters.DefaultRange())
	assert.Equal(t, "characters_processed.json", DatasetCharacters.DefaultOutput())

	unknown := Dataset("digimon")
	assert.False(t, unknown.IsValid())
	assert.Equal(t, "", unknown.DefaultOutput())
	assert.Equal(t, "Unknown", unknown.Description())
}

func TestAllDatasets(t *testing.T) {
	for _, d := range AllDatasets() {
		assert.True(t, d.IsValid(), d)
	}
}

func TestIDRange(t *testing.T) {
	tests := []struct {
		r     IDRange
		valid bool
		len   int
	}{
		{IDRange{Start: 1, End: 3}, true, 3},
		{IDRange{Start: 5, End: 5}, true, 1},
		{IDRange{Start: 0, End: 3}, false, 0},
		{IDRange{Start: 4, End: 3}, false, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.r.IsValid(), tt.r)
		assert.Equal(t, tt.len, tt.r.Len(), tt.r)
	}
}

func TestGroundingContext_Turn(t *testing.T) {
	g := &GroundingContext{Instruction: "system text"}

	msgs := g.Turn("who is rick?")

	assert.Equal(t, []ChatMessage{
		{Role: RoleSystem, Content: "system text"},
		{Role: RoleUser, Content: "who is rick?"},
	}, msgs)
}
