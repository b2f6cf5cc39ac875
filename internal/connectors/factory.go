package connectors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/corpuschat/internal/connectors/restapi"
	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// Default catalogue endpoints. A record is fetched from "<base>/<id>".
const (
	PokemonBaseURL   = "https://pokeapi.co/api/v2/pokemon"
	CharacterBaseURL = "https://rickandmortyapi.com/api/character"
)

// Ensure Factory implements the interface.
var _ driven.FetcherFactory = (*Factory)(nil)

// Factory creates REST fetchers for known datasets.
type Factory struct {
	baseURLs map[domain.Dataset]string
	opts     []restapi.Option
}

// NewFactory creates a factory using the public catalogue endpoints.
// Options are applied to every fetcher it creates.
func NewFactory(opts ...restapi.Option) *Factory {
	return &Factory{
		baseURLs: map[domain.Dataset]string{
			domain.DatasetPokemon:    PokemonBaseURL,
			domain.DatasetCharacters: CharacterBaseURL,
		},
		opts: opts,
	}
}

// SetBaseURL overrides the endpoint for a dataset.
func (f *Factory) SetBaseURL(dataset domain.Dataset, baseURL string) {
	f.baseURLs[dataset] = baseURL
}

// BaseURL returns the endpoint configured for a dataset.
func (f *Factory) BaseURL(dataset domain.Dataset) (string, bool) {
	u, ok := f.baseURLs[dataset]
	return u, ok
}

// Create returns a fetcher for the dataset.
func (f *Factory) Create(dataset domain.Dataset) (driven.RecordFetcher, error) {
	baseURL, ok := f.baseURLs[dataset]
	if !ok {
		return nil, fmt.Errorf("no fetcher for %q: %w", dataset, domain.ErrUnsupportedDataset)
	}
	return restapi.NewFetcher(dataset, baseURL, f.opts...), nil
}

// Datasets returns every dataset with a configured endpoint, sorted by name.
func (f *Factory) Datasets() []domain.Dataset {
	out := make([]domain.Dataset, 0, len(f.baseURLs))
	for d := range f.baseURLs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
