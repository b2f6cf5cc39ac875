// Package google provides a RemoteModel adapter for the Gemini API.
package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
)

// Ensure Model implements the interface.
var _ driven.RemoteModel = (*Model)(nil)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds configuration for the Gemini model.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Model is the model to use (default: gemini-2.5-flash).
	Model string

	// Temperature controls randomness.
	Temperature float64
}

// generator is the subset of the Gemini client the model needs.
type generator interface {
	Generate(ctx context.Context, system string, parts ...genai.Part) (*genai.GenerateContentResponse, error)
	Info(ctx context.Context) error
	Close() error
}

// Model talks to Gemini through the generative-ai-go client.
type Model struct {
	gen   generator
	model string
}

// New creates a Gemini model.
func New(ctx context.Context, cfg Config) (*Model, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google: %w", domain.ErrMissingAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("google: create client: %w", err)
	}

	return newWithGenerator(&clientGenerator{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, cfg.Model), nil
}

func newWithGenerator(gen generator, model string) *Model {
	return &Model{gen: gen, model: model}
}

// Complete sends the messages to Gemini. System messages become the
// system instruction; the rest are sent as text parts in order.
func (m *Model) Complete(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error) {
	var system []string
	var parts []genai.Part
	for _, msg := range messages {
		if msg.Role == domain.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		parts = append(parts, genai.Text(msg.Content))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("google: %w: no user message", domain.ErrInvalidInput)
	}

	resp, err := m.gen.Generate(ctx, strings.Join(system, "\n\n"), parts...)
	if err != nil {
		return nil, fmt.Errorf("google: generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	out := &domain.ChatResponse{Content: text, Model: m.model}
	if u := resp.UsageMetadata; u != nil {
		out.Metadata = &domain.UsageMetadata{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("google: no candidates returned")
	}
	c := resp.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return "", fmt.Errorf("google: empty candidate (finish reason %v)", c.FinishReason)
	}

	var b strings.Builder
	for _, part := range c.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

// Provider returns domain.AIProviderGoogle.
func (m *Model) Provider() domain.AIProvider {
	return domain.AIProviderGoogle
}

// ModelName returns the name of the model being used.
func (m *Model) ModelName() string {
	return m.model
}

// Ping fetches model info, which fails on a rejected key.
func (m *Model) Ping(ctx context.Context) error {
	if err := m.gen.Info(ctx); err != nil {
		return fmt.Errorf("google: ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (m *Model) Close() error {
	return m.gen.Close()
}

// clientGenerator adapts *genai.Client to generator.
type clientGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func (g *clientGenerator) Generate(ctx context.Context, system string, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	return model.GenerateContent(ctx, parts...)
}

func (g *clientGenerator) Info(ctx context.Context) error {
	_, err := g.client.GenerativeModel(g.model).Info(ctx)
	return err
}

func (g *clientGenerator) Close() error {
	return g.client.Close()
}
