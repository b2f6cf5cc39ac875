package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAIProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    AIProvider
		wantErr bool
	}{
		{"google", AIProviderGoogle, false},
		{"  OpenAI ", AIProviderOpenAI, false},
		{"GOOGLE", AIProviderGoogle, false},
		{"anthropic", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAIProvider(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidProvider))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAIProvider_Title(t *testing.T) {
	assert.Equal(t, "Google", AIProviderGoogle.Title())
	assert.Equal(t, "Openai", AIProviderOpenAI.Title())
	assert.Equal(t, "", AIProvider("").Title())
}

func TestProviderTable_Consistent(t *testing.T) {
	all := AllLLMProviders()
	assert.Equal(t, []AIProvider{AIProviderGoogle, AIProviderOpenAI}, all)

	models := DefaultLLMModels()
	assert.Len(t, models, len(all))
	for _, p := range all {
		assert.True(t, p.IsValid(), p)
		assert.NotEqual(t, unknownDescription, p.Description(), p)
		assert.NotEmpty(t, models[p], p)
	}

	assert.False(t, AIProvider("local").IsValid())
	assert.Equal(t, unknownDescription, AIProvider("local").Description())
}

func TestLLMSettings_ModelOrDefault(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", LLMSettings{Provider: AIProviderGoogle}.ModelOrDefault())
	assert.Equal(t, "gpt-3.5-turbo", LLMSettings{Provider: AIProviderOpenAI}.ModelOrDefault())
	assert.Equal(t, "gpt-4o", LLMSettings{Provider: AIProviderOpenAI, Model: "gpt-4o"}.ModelOrDefault())
}

func TestAppSettings_CorpusPath(t *testing.T) {
	s := DefaultAppSettings()
	assert.Equal(t, "characters_processed.json", s.CorpusPath())

	s.Ingest.Output = "out.json"
	assert.Equal(t, "out.json", s.CorpusPath())

	s.Chat.Corpus = "chat.json"
	assert.Equal(t, "chat.json", s.CorpusPath())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()
	assert.Equal(t, AIProviderGoogle, s.LLM.Provider)
	assert.InDelta(t, 0.7, s.LLM.Temperature, 1e-9)
	assert.Equal(t, DatasetCharacters, s.Ingest.Dataset)
}
