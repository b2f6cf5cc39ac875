package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PokemonRecord is the canonical catalog-style record.
// Field order is the JSON key order of the persisted corpus.
type PokemonRecord struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Height         int       `json:"height"`
	Weight         int       `json:"weight"`
	BaseExperience *int      `json:"base_experience"`
	Types          []string  `json:"types"`
	Abilities      []string  `json:"abilities"`
	Stats          StatTable `json:"stats"`
}

// RecordID implements Record.
func (p *PokemonRecord) RecordID() int { return p.ID }

// RecordName implements Record.
func (p *PokemonRecord) RecordName() string { return p.Name }

// Stat is a single named base value.
type Stat struct {
	Name  string
	Value int
}

// StatTable maps stat names to values while keeping insertion order.
// It serialises as a JSON object whose keys follow that order.
type StatTable []Stat

// Set stores value under name. An existing name keeps its position.
func (t *StatTable) Set(name string, value int) {
	for i := range *t {
		if (*t)[i].Name == name {
			(*t)[i].Value = value
			return
		}
	}
	*t = append(*t, Stat{Name: name, Value: value})
}

// Get returns the value stored under name.
func (t StatTable) Get(name string) (int, bool) {
	for _, s := range t {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// MarshalJSON writes the table as an ordered JSON object.
func (t StatTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", s.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping key order.
func (t *StatTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("stats: expected object, got %v", tok)
	}

	table := StatTable{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("stats: expected string key, got %v", keyTok)
		}
		var value int
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("stats: value for %q: %w", key, err)
		}
		table.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = table
	return nil
}
