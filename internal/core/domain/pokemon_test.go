package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatTable_MarshalPreservesOrder(t *testing.T) {
	var stats StatTable
	stats.Set("hp", 45)
	stats.Set("attack", 49)
	stats.Set("speed", 45)

	data, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.Equal(t, `{"hp":45,"attack":49,"speed":45}`, string(data))
}

func TestStatTable_SetOverwritesInPlace(t *testing.T) {
	var stats StatTable
	stats.Set("hp", 1)
	stats.Set("defense", 2)
	stats.Set("hp", 3)

	require.Len(t, stats, 2)
	assert.Equal(t, Stat{Name: "hp", Value: 3}, stats[0])

	v, ok := stats.Get("defense")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = stats.Get("missing")
	assert.False(t, ok)
}

func TestStatTable_UnmarshalPreservesOrder(t *testing.T) {
	var stats StatTable
	err := json.Unmarshal([]byte(`{"speed":90,"hp":35,"special-attack":50}`), &stats)
	require.NoError(t, err)

	assert.Equal(t, StatTable{
		{Name: "speed", Value: 90},
		{Name: "hp", Value: 35},
		{Name: "special-attack", Value: 50},
	}, stats)
}

func TestStatTable_UnmarshalRejectsNonObject(t *testing.T) {
	var stats StatTable
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &stats))
}

func TestStatTable_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(StatTable{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPokemonRecord_JSONKeyOrder(t *testing.T) {
	p := &PokemonRecord{
		ID:        25,
		Name:      "pikachu",
		Height:    4,
		Weight:    60,
		Types:     []string{"electric"},
		Abilities: []string{"static", "lightning-rod"},
		Stats:     StatTable{{Name: "hp", Value: 35}},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":25,"name":"pikachu","height":4,"weight":60,"base_experience":null,`+
			`"types":["electric"],"abilities":["static","lightning-rod"],"stats":{"hp":35}}`,
		string(data))
	assert.Equal(t, 25, p.RecordID())
	assert.Equal(t, "pikachu", p.RecordName())
}
