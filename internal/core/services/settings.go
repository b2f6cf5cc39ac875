package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMTemperature = "llm.temperature"
	keyIngestDataset  = "ingest.dataset"
	keyIngestStart    = "ingest.start"
	keyIngestEnd      = "ingest.end"
	keyIngestOutput   = "ingest.output"
	keyChatCorpus     = "chat.corpus"
)

// maxTemperature is the upper bound accepted by both providers.
const maxTemperature = 2.0

// SettingKeys returns the keys accepted by SetValue, in display order.
func SettingKeys() []string {
	return []string{
		keyLLMProvider, keyLLMModel, keyLLMBaseURL, keyLLMTemperature,
		keyIngestDataset, keyIngestStart, keyIngestEnd, keyIngestOutput,
		keyChatCorpus,
	}
}

// SettingsOverrides are values from the environment. Non-empty fields take
// precedence over the settings file.
type SettingsOverrides struct {
	Provider string
	Model    string
	BaseURL  string
}

// SettingsService manages application settings.
// Values resolve as defaults, then the settings file, then overrides.
type SettingsService struct {
	configStore driven.ConfigStore
	models      driven.ModelFactory
	overrides   SettingsOverrides
}

// NewSettingsService creates a new settings service.
// models is optional - if nil, Validate skips the model check.
func NewSettingsService(configStore driven.ConfigStore, models driven.ModelFactory) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		models:      models,
	}
}

// SetOverrides sets the environment overrides applied by Get.
func (s *SettingsService) SetOverrides(o SettingsOverrides) {
	s.overrides = o
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:    s.getProvider(defaults.LLM.Provider),
			Model:       s.configStore.GetString(keyLLMModel),
			BaseURL:     s.configStore.GetString(keyLLMBaseURL),
			Temperature: s.getTemperature(defaults.LLM.Temperature),
		},
		Ingest: domain.IngestSettings{
			Dataset: s.getDataset(defaults.Ingest.Dataset),
			Range: domain.IDRange{
				Start: s.configStore.GetInt(keyIngestStart),
				End:   s.configStore.GetInt(keyIngestEnd),
			},
			Output: s.configStore.GetString(keyIngestOutput),
		},
		Chat: domain.ChatSettings{
			Corpus: s.configStore.GetString(keyChatCorpus),
		},
	}

	if p, err := domain.ParseAIProvider(s.overrides.Provider); err == nil {
		if p != settings.LLM.Provider {
			// A model configured for another provider does not carry over.
			settings.LLM.Model = ""
		}
		settings.LLM.Provider = p
	}
	if s.overrides.Model != "" {
		settings.LLM.Model = s.overrides.Model
	}
	if s.overrides.BaseURL != "" {
		settings.LLM.BaseURL = s.overrides.BaseURL
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMTemperature, settings.LLM.Temperature},
		{keyIngestDataset, settings.Ingest.Dataset.String()},
		{keyIngestOutput, settings.Ingest.Output},
		{keyChatCorpus, settings.Chat.Corpus},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if settings.Ingest.Range.IsValid() {
		if err := s.configStore.Set(keyIngestStart, settings.Ingest.Range.Start); err != nil {
			return fmt.Errorf("save %s: %w", keyIngestStart, err)
		}
		if err := s.configStore.Set(keyIngestEnd, settings.Ingest.Range.End); err != nil {
			return fmt.Errorf("save %s: %w", keyIngestEnd, err)
		}
	} else {
		_ = s.configStore.Delete(keyIngestStart)
		_ = s.configStore.Delete(keyIngestEnd)
	}

	return s.configStore.Save()
}

// SetLLMProvider configures the model provider and, optionally, the model.
// An empty model clears any model set for the previous provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProvider, provider)
	}
	if err := s.configStore.Set(keyLLMProvider, provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if model == "" {
		_ = s.configStore.Delete(keyLLMModel)
	} else if err := s.configStore.Set(keyLLMModel, model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	return s.configStore.Save()
}

// SetValue parses and stores a single key. An empty value removes the key.
func (s *SettingsService) SetValue(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}

	if value == "" {
		err = s.configStore.Delete(key)
	} else {
		err = s.configStore.Set(key, parsed)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return s.configStore.Save()
}

func parseSetting(key, value string) (any, error) {
	if !slices.Contains(SettingKeys(), key) {
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if value == "" {
		return nil, nil
	}

	switch key {
	case keyLLMProvider:
		p, err := domain.ParseAIProvider(value)
		if err != nil {
			return nil, err
		}
		return p.String(), nil
	case keyLLMTemperature:
		t, err := strconv.ParseFloat(value, 64)
		if err != nil || t < 0 || t > maxTemperature {
			return nil, fmt.Errorf("%w: %s must be a number between 0 and %.0f", domain.ErrInvalidInput, key, maxTemperature)
		}
		return t, nil
	case keyIngestDataset:
		d := domain.Dataset(strings.ToLower(value))
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDataset, value)
		}
		return d.String(), nil
	case keyIngestStart, keyIngestEnd:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return n, nil
	default:
		return value, nil
	}
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if r := settings.Ingest.Range; (r.Start != 0 || r.End != 0) && !r.IsValid() {
		return fmt.Errorf("%w: ingest range %d-%d", domain.ErrInvalidInput, r.Start, r.End)
	}

	if s.models == nil {
		return nil
	}
	model, err := s.models.Create(context.Background(), settings.LLM)
	if err != nil {
		return err
	}
	return model.Close()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getProvider(def domain.AIProvider) domain.AIProvider {
	p, err := domain.ParseAIProvider(s.configStore.GetString(keyLLMProvider))
	if err != nil {
		return def
	}
	return p
}

func (s *SettingsService) getTemperature(def float64) float64 {
	if _, ok := s.configStore.Get(keyLLMTemperature); !ok {
		return def
	}
	t := s.configStore.GetFloat(keyLLMTemperature)
	if t < 0 || t > maxTemperature {
		return def
	}
	return t
}

func (s *SettingsService) getDataset(def domain.Dataset) domain.Dataset {
	d := domain.Dataset(s.configStore.GetString(keyIngestDataset))
	if !d.IsValid() {
		return def
	}
	return d
}
