package domain

// Dataset identifies a public catalogue that can be ingested into a corpus.
type Dataset string

// Available datasets.
const (
	// DatasetPokemon is the PokeAPI pokemon catalogue.
	DatasetPokemon Dataset = "pokemon"

	// DatasetCharacters is the Rick and Morty character catalogue.
	DatasetCharacters Dataset = "characters"
)

// IsValid returns true if the dataset is recognised.
func (d Dataset) IsValid() bool {
	switch d {
	case DatasetPokemon, DatasetCharacters:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Dataset) String() string {
	return string(d)
}

// Description returns a human-readable description of the dataset.
func (d Dataset) Description() string {
	switch d {
	case DatasetPokemon:
		return "Pokemon (pokeapi.co)"
	case DatasetCharacters:
		return "Rick and Morty characters (rickandmortyapi.com)"
	default:
		return "Unknown"
	}
}

// DefaultRange returns the identifier range ingested when none is given.
func (d Dataset) DefaultRange() IDRange {
	switch d {
	case DatasetPokemon:
		return IDRange{Start: 1, End: 100}
	case DatasetCharacters:
		return IDRange{Start: 1, End: 20}
	default:
		return IDRange{}
	}
}

// DefaultOutput returns the corpus file name written when none is given.
func (d Dataset) DefaultOutput() string {
	switch d {
	case DatasetPokemon:
		return "pokemon_data.json"
	case DatasetCharacters:
		return "characters_processed.json"
	default:
		return ""
	}
}

// AllDatasets returns all ingestible datasets.
func AllDatasets() []Dataset {
	return []Dataset{DatasetPokemon, DatasetCharacters}
}

// IDRange is a closed range of record identifiers.
type IDRange struct {
	Start int
	End   int
}

// IsValid returns true if the range is non-empty and starts at 1 or above.
func (r IDRange) IsValid() bool {
	return r.Start >= 1 && r.End >= r.Start
}

// Len returns the number of identifiers in the range.
func (r IDRange) Len() int {
	if !r.IsValid() {
		return 0
	}
	return r.End - r.Start + 1
}
