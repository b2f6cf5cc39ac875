// Package ai creates remote models for the configured provider.
package ai

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/corpuschat/internal/adapters/driven/config/env"
	googlellm "github.com/custodia-labs/corpuschat/internal/adapters/driven/llm/google"
	openaillm "github.com/custodia-labs/corpuschat/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

// Ensure ModelFactory implements the interface.
var _ driven.ModelFactory = (*ModelFactory)(nil)

// pingTimeout is the maximum time to wait for model connectivity validation.
const pingTimeout = 5 * time.Second

// Constructor builds a model for one provider.
type Constructor func(ctx context.Context, apiKey string, settings domain.LLMSettings) (driven.RemoteModel, error)

// ModelFactory maps providers to constructors.
// API keys are injected once; nothing is read from the environment here.
type ModelFactory struct {
	mu           sync.RWMutex
	keys         map[domain.AIProvider]string
	baseURLs     map[domain.AIProvider]string
	constructors map[domain.AIProvider]Constructor
}

// NewModelFactory creates a factory for the Google and OpenAI providers.
func NewModelFactory(keys map[domain.AIProvider]string) *ModelFactory {
	f := &ModelFactory{
		keys:         make(map[domain.AIProvider]string, len(keys)),
		baseURLs:     make(map[domain.AIProvider]string),
		constructors: make(map[domain.AIProvider]Constructor),
	}
	for p, k := range keys {
		f.keys[p] = k
	}
	f.Register(domain.AIProviderGoogle, newGoogle)
	f.Register(domain.AIProviderOpenAI, newOpenAI)
	return f
}

// Register sets the constructor for a provider.
func (f *ModelFactory) Register(p domain.AIProvider, c Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[p] = c
}

// SetAPIKey sets the credential for a provider.
func (f *ModelFactory) SetAPIKey(p domain.AIProvider, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[p] = key
}

// SetBaseURL sets the endpoint used for a provider when the settings
// don't name one.
func (f *ModelFactory) SetBaseURL(p domain.AIProvider, url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.baseURLs[p] = url
}

// HasAPIKey reports whether a credential is available for a provider.
func (f *ModelFactory) HasAPIKey(p domain.AIProvider) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.keys[p] != ""
}

// Create returns a model for the given settings.
func (f *ModelFactory) Create(ctx context.Context, settings domain.LLMSettings) (driven.RemoteModel, error) {
	f.mu.RLock()
	ctor, ok := f.constructors[settings.Provider]
	key := f.keys[settings.Provider]
	baseURL := f.baseURLs[settings.Provider]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProvider, settings.Provider)
	}
	if key == "" {
		if keyVar, err := env.KeyVar(settings.Provider); err == nil {
			return nil, fmt.Errorf("%w: set %s", domain.ErrMissingAPIKey, keyVar)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAPIKey, settings.Provider)
	}
	if settings.Model == "" {
		settings.Model = settings.ModelOrDefault()
	}
	if settings.BaseURL == "" {
		settings.BaseURL = baseURL
	}

	logger.Debug("creating %s model %s", settings.Provider, settings.Model)
	return ctor(ctx, key, settings)
}

// CreateAndValidate creates a model and validates connectivity.
// The model is closed if validation fails.
func (f *ModelFactory) CreateAndValidate(ctx context.Context, settings domain.LLMSettings) (driven.RemoteModel, error) {
	m, err := f.Create(ctx, settings)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := m.Ping(pingCtx); err != nil {
		m.Close()
		return nil, fmt.Errorf("%s model unreachable: %w", settings.Provider, err)
	}
	return m, nil
}

// Validate creates a model for settings, pings it and closes it.
func (f *ModelFactory) Validate(ctx context.Context, settings domain.LLMSettings) error {
	m, err := f.CreateAndValidate(ctx, settings)
	if err != nil {
		return err
	}
	return m.Close()
}

// Providers returns the providers this factory can create.
// Built-in providers come first in their usual order, followed by
// any other registered providers sorted by name.
func (f *ModelFactory) Providers() []domain.AIProvider {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.AIProvider, 0, len(f.constructors))
	seen := make(map[domain.AIProvider]bool, len(f.constructors))
	for _, p := range domain.AllLLMProviders() {
		if _, ok := f.constructors[p]; ok {
			out = append(out, p)
			seen[p] = true
		}
	}

	var extra []domain.AIProvider
	for p := range f.constructors {
		if !seen[p] {
			extra = append(extra, p)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func newGoogle(ctx context.Context, apiKey string, s domain.LLMSettings) (driven.RemoteModel, error) {
	return googlellm.New(ctx, googlellm.Config{
		APIKey:      apiKey,
		BaseURL:     s.BaseURL,
		Model:       s.Model,
		Temperature: s.Temperature,
	})
}

func newOpenAI(_ context.Context, apiKey string, s domain.LLMSettings) (driven.RemoteModel, error) {
	return openaillm.New(openaillm.Config{
		APIKey:      apiKey,
		BaseURL:     s.BaseURL,
		Model:       s.Model,
		Temperature: s.Temperature,
	})
}
