package domain

import "strings"

const unknownDescription = "Unknown"

// AIProvider identifies a hosted language model provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGoogle is the Google Gemini API.
	AIProviderGoogle AIProvider = "google"

	// AIProviderOpenAI is the OpenAI chat completions API.
	AIProviderOpenAI AIProvider = "openai"
)

// ParseAIProvider normalises a user-supplied provider name.
// Surrounding whitespace and case are ignored.
func ParseAIProvider(s string) (AIProvider, error) {
	p := AIProvider(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidProvider
	}
	return p, nil
}

// providerInfo describes one supported provider.
type providerInfo struct {
	provider     AIProvider
	description  string
	defaultModel string
}

// providers is the single table of supported providers, in display order.
var providers = []providerInfo{
	{AIProviderGoogle, "Google Gemini (cloud)", "gemini-2.5-flash"},
	{AIProviderOpenAI, "OpenAI (cloud)", "gpt-3.5-turbo"},
}

func lookupProvider(p AIProvider) (providerInfo, bool) {
	for _, info := range providers {
		if info.provider == p {
			return info, true
		}
	}
	return providerInfo{}, false
}

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	_, ok := lookupProvider(p)
	return ok
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Title returns the provider name for banners, e.g. "Google".
func (p AIProvider) Title() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	if info, ok := lookupProvider(p); ok {
		return info.description
	}
	return unknownDescription
}

// AllLLMProviders returns the supported providers.
func AllLLMProviders() []AIProvider {
	out := make([]AIProvider, len(providers))
	for i, info := range providers {
		out[i] = info.provider
	}
	return out
}

// DefaultLLMModels returns default models for each provider.
func DefaultLLMModels() map[AIProvider]string {
	out := make(map[AIProvider]string, len(providers))
	for _, info := range providers {
		out[info.provider] = info.defaultModel
	}
	return out
}

// DefaultTemperature is the sampling temperature used for every provider.
const DefaultTemperature = 0.7

// LLMSettings holds remote model configuration.
type LLMSettings struct {
	// Provider is the model provider.
	Provider AIProvider

	// Model is the model name. Empty means the provider default.
	Model string

	// BaseURL overrides the provider endpoint.
	BaseURL string

	// Temperature controls randomness.
	Temperature float64
}

// ModelOrDefault returns Model, or the provider default when unset.
func (l LLMSettings) ModelOrDefault() string {
	if l.Model != "" {
		return l.Model
	}
	return DefaultLLMModels()[l.Provider]
}

// IngestSettings holds default ingestion parameters.
type IngestSettings struct {
	// Dataset is the catalogue ingested when none is given.
	Dataset Dataset

	// Range overrides the dataset's default range when valid.
	Range IDRange

	// Output overrides the dataset's default output path when set.
	Output string
}

// ChatSettings holds chat session parameters.
type ChatSettings struct {
	// Corpus is the corpus file used as grounding context.
	// Empty means the default output of the ingest dataset.
	Corpus string
}

// AppSettings holds all application settings.
type AppSettings struct {
	LLM    LLMSettings
	Ingest IngestSettings
	Chat   ChatSettings
}

// CorpusPath returns the corpus file a chat session should read.
func (s AppSettings) CorpusPath() string {
	if s.Chat.Corpus != "" {
		return s.Chat.Corpus
	}
	if s.Ingest.Output != "" {
		return s.Ingest.Output
	}
	return s.Ingest.Dataset.DefaultOutput()
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider:    AIProviderGoogle,
			Temperature: DefaultTemperature,
		},
		Ingest: IngestSettings{
			Dataset: DatasetCharacters,
		},
	}
}
