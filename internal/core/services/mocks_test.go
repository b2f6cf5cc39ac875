package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// mockFetcher serves canned payloads keyed by identifier.
type mockFetcher struct {
	dataset  domain.Dataset
	payloads map[int]string
	errs     map[int]error
	calls    []int
}

func newMockFetcher(dataset domain.Dataset) *mockFetcher {
	return &mockFetcher{
		dataset:  dataset,
		payloads: make(map[int]string),
		errs:     make(map[int]error),
	}
}

func (m *mockFetcher) Dataset() domain.Dataset { return m.dataset }

func (m *mockFetcher) Fetch(_ context.Context, id int) (*domain.RawRecord, error) {
	m.calls = append(m.calls, id)
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	body, ok := m.payloads[id]
	if !ok {
		return nil, fmt.Errorf("%w: no payload for %d", domain.ErrFetchFailed, id)
	}
	return &domain.RawRecord{Dataset: m.dataset, ID: id, Content: []byte(body)}, nil
}

// mockFetcherFactory returns the same fetcher for every dataset.
type mockFetcherFactory struct {
	fetcher *mockFetcher
	err     error
}

func (f *mockFetcherFactory) Create(_ domain.Dataset) (driven.RecordFetcher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fetcher, nil
}

// mockModel records the messages it receives.
type mockModel struct {
	mu       sync.Mutex
	provider domain.AIProvider
	replies  []*domain.ChatResponse
	errs     []error
	received [][]domain.ChatMessage
	closed   bool
}

func (m *mockModel) Complete(_ context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.received)
	m.received = append(m.received, messages)
	if n < len(m.errs) && m.errs[n] != nil {
		return nil, m.errs[n]
	}
	if n < len(m.replies) {
		return m.replies[n], nil
	}
	return &domain.ChatResponse{Content: "I don't know"}, nil
}

func (m *mockModel) Provider() domain.AIProvider {
	if m.provider == "" {
		return domain.AIProviderGoogle
	}
	return m.provider
}

func (m *mockModel) ModelName() string          { return "mock-model" }
func (m *mockModel) Ping(context.Context) error { return nil }

func (m *mockModel) Close() error {
	m.closed = true
	return nil
}

func (m *mockModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.received)
}

// mockModelFactory hands out a single model.
type mockModelFactory struct {
	model   *mockModel
	err     error
	created int
	last    domain.LLMSettings
}

func (f *mockModelFactory) Create(_ context.Context, settings domain.LLMSettings) (driven.RemoteModel, error) {
	f.last = settings
	if f.err != nil {
		return nil, f.err
	}
	if !settings.Provider.IsValid() {
		return nil, domain.ErrInvalidProvider
	}
	f.created++
	return f.model, nil
}

func (f *mockModelFactory) Validate(ctx context.Context, settings domain.LLMSettings) error {
	m, err := f.Create(ctx, settings)
	if err != nil {
		return err
	}
	return m.Close()
}

func (f *mockModelFactory) Providers() []domain.AIProvider {
	return domain.AllLLMProviders()
}

// mockPromptStore returns a fixed prompt.
type mockPromptStore struct {
	prompt string
	err    error
}

func (p *mockPromptStore) Load(_ string) (string, error) { return p.prompt, p.err }
func (p *mockPromptStore) Reload()                       {}

// pokemonPayload is a minimal valid pokemon body.
func pokemonPayload(id int, name string) string {
	return fmt.Sprintf(`{"id":%d,"name":%q,"height":7,"weight":69,"base_experience":64}`, id, name)
}
