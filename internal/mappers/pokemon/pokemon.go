// Package pokemon maps PokeAPI pokemon payloads to domain.PokemonRecord.
package pokemon

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// Ensure Mapper implements the interface.
var _ driven.RecordMapper = (*Mapper)(nil)

// Mapper flattens pokemon payloads.
type Mapper struct{}

// New creates a new pokemon mapper.
func New() *Mapper {
	return &Mapper{}
}

// Dataset returns domain.DatasetPokemon.
func (m *Mapper) Dataset() domain.Dataset {
	return domain.DatasetPokemon
}

type namedRef struct {
	Name *string `json:"name"`
}

type payload struct {
	ID             *int    `json:"id"`
	Name           *string `json:"name"`
	Height         *int    `json:"height"`
	Weight         *int    `json:"weight"`
	BaseExperience *int    `json:"base_experience"`
	Types          []struct {
		Type namedRef `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability namedRef `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
}

// Map converts a raw pokemon payload into a canonical record.
func (m *Mapper) Map(raw *domain.RawRecord) (domain.Record, error) {
	if raw == nil {
		return nil, nil
	}

	var p payload
	if err := json.Unmarshal(raw.Content, &p); err != nil {
		return nil, fmt.Errorf("decode pokemon %d: %v: %w", raw.ID, err, domain.ErrMalformedRecord)
	}

	switch {
	case p.ID == nil:
		return nil, missing(raw.ID, "id")
	case p.Name == nil:
		return nil, missing(raw.ID, "name")
	case p.Height == nil:
		return nil, missing(raw.ID, "height")
	case p.Weight == nil:
		return nil, missing(raw.ID, "weight")
	}

	rec := &domain.PokemonRecord{
		ID:             *p.ID,
		Name:           *p.Name,
		Height:         *p.Height,
		Weight:         *p.Weight,
		BaseExperience: p.BaseExperience,
		Types:          make([]string, 0, len(p.Types)),
		Abilities:      make([]string, 0, len(p.Abilities)),
		Stats:          make(domain.StatTable, 0, len(p.Stats)),
	}

	for _, t := range p.Types {
		if t.Type.Name == nil {
			return nil, missing(raw.ID, "types[].type.name")
		}
		rec.Types = append(rec.Types, *t.Type.Name)
	}
	for _, a := range p.Abilities {
		if a.Ability.Name == nil {
			return nil, missing(raw.ID, "abilities[].ability.name")
		}
		rec.Abilities = append(rec.Abilities, *a.Ability.Name)
	}
	for _, s := range p.Stats {
		if s.Stat.Name == nil {
			return nil, missing(raw.ID, "stats[].stat.name")
		}
		rec.Stats.Set(*s.Stat.Name, s.BaseStat)
	}

	return rec, nil
}

func missing(id int, field string) error {
	return fmt.Errorf("pokemon %d: missing %s: %w", id, field, domain.ErrMalformedRecord)
}
