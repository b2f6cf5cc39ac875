// Package characters maps Rick and Morty character payloads to
// domain.CharacterRecord.
//
// Default-value policy for the dataset lives here and nowhere else:
//   - a missing subtype becomes ""
//   - a location without an address becomes {id: null, name: "Unknown"}
//   - a location whose address does not end in digits gets id null
//   - image, url and created are copied through or left null
package characters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// Ensure Mapper implements the interface.
var _ driven.RecordMapper = (*Mapper)(nil)

// Mapper flattens character payloads.
type Mapper struct{}

// New creates a new character mapper.
func New() *Mapper {
	return &Mapper{}
}

// Dataset returns domain.DatasetCharacters.
func (m *Mapper) Dataset() domain.Dataset {
	return domain.DatasetCharacters
}

type location struct {
	Name *string `json:"name"`
	URL  string  `json:"url"`
}

type payload struct {
	ID       *int      `json:"id"`
	Name     *string   `json:"name"`
	Status   *string   `json:"status"`
	Species  *string   `json:"species"`
	Type     string    `json:"type"`
	Gender   *string   `json:"gender"`
	Origin   *location `json:"origin"`
	Location *location `json:"location"`
	Episode  []string  `json:"episode"`
	Image    *string   `json:"image"`
	URL      *string   `json:"url"`
	Created  *string   `json:"created"`
}

// Map converts a raw character payload into a canonical record.
func (m *Mapper) Map(raw *domain.RawRecord) (domain.Record, error) {
	if raw == nil {
		return nil, nil
	}

	var p payload
	if err := json.Unmarshal(raw.Content, &p); err != nil {
		return nil, fmt.Errorf("decode character %d: %v: %w", raw.ID, err, domain.ErrMalformedRecord)
	}

	switch {
	case p.ID == nil:
		return nil, missing(raw.ID, "id")
	case p.Name == nil:
		return nil, missing(raw.ID, "name")
	case p.Status == nil:
		return nil, missing(raw.ID, "status")
	case p.Species == nil:
		return nil, missing(raw.ID, "species")
	case p.Gender == nil:
		return nil, missing(raw.ID, "gender")
	}

	episodes, err := EpisodeIDs(p.Episode)
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", raw.ID, err)
	}

	rec := &domain.CharacterRecord{
		ID:              *p.ID,
		Name:            *p.Name,
		Status:          *p.Status,
		Species:         *p.Species,
		Type:            p.Type,
		Gender:          *p.Gender,
		Origin:          flattenLocation(p.Origin),
		CurrentLocation: flattenLocation(p.Location),
		ImageURL:        p.Image,
		APIURL:          p.URL,
		CreatedDate:     p.Created,
	}
	rec.SetEpisodes(episodes)
	rec.Derive()

	return rec, nil
}

// EpisodeIDs parses the trailing path segment of each episode URL.
// Order is preserved. A segment that is not a plain integer is an error.
func EpisodeIDs(urls []string) ([]int, error) {
	ids := make([]int, 0, len(urls))
	for _, u := range urls {
		seg := lastSegment(u)
		if !isDigits(seg) {
			return nil, fmt.Errorf("episode url %q: %w", u, domain.ErrMalformedRecord)
		}
		id, err := strconv.Atoi(seg)
		if err != nil {
			return nil, fmt.Errorf("episode url %q: %v: %w", u, err, domain.ErrMalformedRecord)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// flattenLocation applies the location default policy.
func flattenLocation(loc *location) domain.LocationRef {
	if loc == nil || loc.URL == "" {
		return domain.LocationRef{Name: domain.UnknownLocation}
	}

	ref := domain.LocationRef{Name: domain.UnknownLocation}
	if loc.Name != nil && *loc.Name != "" {
		ref.Name = *loc.Name
	}
	if seg := lastSegment(loc.URL); isDigits(seg) {
		if id, err := strconv.Atoi(seg); err == nil {
			ref.ID = &id
		}
	}
	return ref
}

func lastSegment(u string) string {
	return u[strings.LastIndex(u, "/")+1:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func missing(id int, field string) error {
	return fmt.Errorf("character %d: missing %s: %w", id, field, domain.ErrMalformedRecord)
}
