package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	resp      *domain.ChatResponse
	err       error
	questions []string
}

func (m *mockChatService) Exchange(_ context.Context, text string) (*domain.ChatResponse, error) {
	m.questions = append(m.questions, text)
	return m.resp, m.err
}

func (m *mockChatService) Run(_ context.Context, _ io.Reader, _ io.Writer) error {
	return nil
}

func (m *mockChatService) Context() *domain.GroundingContext {
	return &domain.GroundingContext{CorpusPath: "c.json", Instruction: "grounding text"}
}

func (m *mockChatService) ModelName() string { return "gemini-2.5-flash" }
func (m *mockChatService) Close() error      { return nil }

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	entries []driving.CorpusEntry
	err     error
	path    string
}

func (m *mockCorpusService) List(path string) ([]driving.CorpusEntry, error) {
	m.path = path
	return m.entries, m.err
}

func (m *mockCorpusService) Get(path string, id int) (*driving.CorpusEntry, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
}

func testEntries() []driving.CorpusEntry {
	return []driving.CorpusEntry{
		{ID: 1, Name: "Rick Sanchez", Raw: json.RawMessage(`{"id":1,"name":"Rick Sanchez"}`)},
		{ID: 2, Name: "Morty Smith", Raw: json.RawMessage(`{"id":2,"name":"Morty Smith"}`)},
	}
}
