package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCharacterRecord_SetEpisodes(t *testing.T) {
	tests := []struct {
		name      string
		ids       []int
		wantCount int
		wantFirst *int
		wantLast  *int
	}{
		{"nil list", nil, 0, nil, nil},
		{"empty list", []int{}, 0, nil, nil},
		{"single", []int{7}, 1, intPtr(7), intPtr(7)},
		{"unordered keeps order", []int{10, 3, 51, 4}, 4, intPtr(3), intPtr(51)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CharacterRecord{}
			c.SetEpisodes(tt.ids)

			assert.NotNil(t, c.EpisodeIDs)
			assert.Equal(t, tt.wantCount, c.EpisodeCount)
			assert.Equal(t, tt.wantFirst, c.FirstAppearance)
			assert.Equal(t, tt.wantLast, c.LastAppearance)
			if tt.ids != nil {
				assert.Equal(t, tt.ids, c.EpisodeIDs)
			}
		})
	}
}

func TestCharacterRecord_Derive(t *testing.T) {
	c := &CharacterRecord{
		ID:              1,
		Name:            "Rick Sanchez",
		Status:          "Alive",
		Species:         "Human",
		Gender:          "Male",
		Origin:          LocationRef{ID: intPtr(1), Name: "Earth (C-137)"},
		CurrentLocation: LocationRef{ID: intPtr(3), Name: "Citadel of Ricks"},
	}
	c.SetEpisodes([]int{1, 2, 3})
	c.Derive()

	assert.Equal(t,
		"Rick Sanchez is a alive human (male) who originated from Earth (C-137) and currently resides in Citadel of Ricks. Appeared in 3 episodes.",
		c.Description)
	assert.Equal(t, "Rick Sanchez Human Alive Male Earth (C-137) Citadel of Ricks ", c.SearchableText)
}

func TestCharacterRecord_DeriveNoEpisodes(t *testing.T) {
	c := &CharacterRecord{Name: "Zeep", Status: "unknown", Species: "Alien", Gender: "Genderless", Type: "Microverse"}
	c.Origin.Name = UnknownLocation
	c.CurrentLocation.Name = UnknownLocation
	c.SetEpisodes(nil)
	c.Derive()

	assert.Equal(t, 0, c.EpisodeCount)
	assert.Nil(t, c.FirstAppearance)
	assert.Nil(t, c.LastAppearance)
	assert.Contains(t, c.Description, "Appeared in 0 episodes.")
	assert.Equal(t, "Zeep Alien unknown Genderless Unknown Unknown Microverse", c.SearchableText)
}

func TestCharacterRecord_JSONKeyOrder(t *testing.T) {
	c := &CharacterRecord{ID: 2, Name: "Morty Smith"}
	c.SetEpisodes(nil)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	assert.Equal(t,
		`{"id":2,"name":"Morty Smith","status":"","species":"","type":"","gender":"",`+
			`"origin":{"id":null,"name":""},"current_location":{"id":null,"name":""},`+
			`"episode_count":0,"episode_ids":[],"first_appearance":null,"last_appearance":null,`+
			`"image_url":null,"api_url":null,"created_date":null,"description":"","searchable_text":""}`,
		string(data))
}
