package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

func newTestModel(t *testing.T, handler http.HandlerFunc) *Model {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL, Temperature: 0.7})
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)

	m, err := New(Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, m.ModelName())
	assert.Equal(t, DefaultBaseURL, m.baseURL)
	assert.Equal(t, domain.AIProviderOpenAI, m.Provider())
	assert.NoError(t, m.Close())
}

func TestComplete_SendsRequest(t *testing.T) {
	var got chatCompletionRequest
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"model":"gpt-3.5-turbo-0125","choices":[{"message":{"content":"Pikachu is electric."}}]}`))
	})

	g := &domain.GroundingContext{Instruction: "answer from data"}
	resp, err := m.Complete(context.Background(), g.Turn("What type is Pikachu?"))
	require.NoError(t, err)

	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "answer from data", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 0.7, *got.Temperature, 1e-9)

	assert.Equal(t, "Pikachu is electric.", resp.Content)
	assert.Equal(t, "gpt-3.5-turbo-0125", resp.Model)
	assert.Nil(t, resp.Accounting)
	assert.Nil(t, resp.Metadata)
}

func TestComplete_Accounting(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"model":"gpt-3.5-turbo","choices":[{"message":{"content":"I don't know"}}],
			"usage":{"prompt_tokens":2000,"completion_tokens":1000,"total_tokens":3000}}`))
	})

	resp, err := m.Complete(context.Background(), []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}})
	require.NoError(t, err)
	require.NotNil(t, resp.Accounting)
	assert.Equal(t, 2000, resp.Accounting.PromptTokens)
	assert.Equal(t, 1000, resp.Accounting.CompletionTokens)
	assert.Equal(t, 3000, resp.Accounting.TotalTokens)
	assert.InDelta(t, 0.0025, resp.Accounting.TotalCost, 1e-9)
}

func TestComplete_Errors(t *testing.T) {
	msgs := []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}

	t.Run("api error body", func(t *testing.T) {
		m := newTestModel(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
		})
		_, err := m.Complete(context.Background(), msgs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("non json status", func(t *testing.T) {
		m := newTestModel(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		})
		_, err := m.Complete(context.Background(), msgs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("no choices", func(t *testing.T) {
		m := newTestModel(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})
		_, err := m.Complete(context.Background(), msgs)
		assert.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	assert.NoError(t, m.Ping(context.Background()))

	m.apiKey = "wrong"
	assert.Error(t, m.Ping(context.Background()))
}

func TestCost(t *testing.T) {
	tests := []struct {
		model string
		want  float64
	}{
		{"gpt-3.5-turbo", 0.0005 + 0.0015},
		{"gpt-3.5-turbo-0125", 0.0005 + 0.0015},
		{"gpt-4o-mini", 0.00015 + 0.0006},
		{"gpt-4o-2024-08-06", 0.0025 + 0.01},
		{"gpt-4", 0.03 + 0.06},
		{"llama3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cost(tt.model, 1000, 1000), 1e-9)
		})
	}
}
