package domain

import (
	"fmt"
	"strings"
)

// UnknownLocation is the display name used when a location has no usable name
// or no address.
const UnknownLocation = "Unknown"

// LocationRef is a flattened reference to a location.
type LocationRef struct {
	// ID is parsed from the trailing segment of the location URL.
	// Nil when the URL is absent or its last segment is not numeric.
	ID *int `json:"id"`

	// Name is the display name, UnknownLocation by default.
	Name string `json:"name"`
}

// CharacterRecord is the canonical entity-style record.
// Field order is the JSON key order of the persisted corpus.
type CharacterRecord struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Status          string      `json:"status"`
	Species         string      `json:"species"`
	Type            string      `json:"type"`
	Gender          string      `json:"gender"`
	Origin          LocationRef `json:"origin"`
	CurrentLocation LocationRef `json:"current_location"`
	EpisodeCount    int         `json:"episode_count"`
	EpisodeIDs      []int       `json:"episode_ids"`
	FirstAppearance *int        `json:"first_appearance"`
	LastAppearance  *int        `json:"last_appearance"`
	ImageURL        *string     `json:"image_url"`
	APIURL          *string     `json:"api_url"`
	CreatedDate     *string     `json:"created_date"`
	Description     string      `json:"description"`
	SearchableText  string      `json:"searchable_text"`
}

// RecordID implements Record.
func (c *CharacterRecord) RecordID() int { return c.ID }

// RecordName implements Record.
func (c *CharacterRecord) RecordName() string { return c.Name }

// SetEpisodes stores the appearance list and recomputes the count and the
// first and last appearance.
func (c *CharacterRecord) SetEpisodes(ids []int) {
	if ids == nil {
		ids = []int{}
	}
	c.EpisodeIDs = ids
	c.EpisodeCount = len(ids)
	c.FirstAppearance = nil
	c.LastAppearance = nil
	if len(ids) == 0 {
		return
	}
	lo, hi := ids[0], ids[0]
	for _, id := range ids[1:] {
		lo = min(lo, id)
		hi = max(hi, id)
	}
	c.FirstAppearance = &lo
	c.LastAppearance = &hi
}

// Derive regenerates Description and SearchableText from the other fields.
func (c *CharacterRecord) Derive() {
	c.Description = DescribeCharacter(c)
	c.SearchableText = SearchableText(c)
}

// DescribeCharacter renders the natural-language summary of a character.
// Status, species and gender are lowercased; names are kept as-is.
func DescribeCharacter(c *CharacterRecord) string {
	return fmt.Sprintf(
		"%s is a %s %s (%s) who originated from %s and currently resides in %s. Appeared in %d episodes.",
		c.Name,
		strings.ToLower(c.Status),
		strings.ToLower(c.Species),
		strings.ToLower(c.Gender),
		c.Origin.Name,
		c.CurrentLocation.Name,
		len(c.EpisodeIDs),
	)
}

// SearchableText joins the filterable fields of a character with single spaces.
// An empty subtype still contributes its separator.
func SearchableText(c *CharacterRecord) string {
	return strings.Join([]string{
		c.Name,
		c.Species,
		c.Status,
		c.Gender,
		c.Origin.Name,
		c.CurrentLocation.Name,
		c.Type,
	}, " ")
}
