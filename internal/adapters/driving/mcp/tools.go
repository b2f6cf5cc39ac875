package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/corpuschat/internal/core/services"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the corpus"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string   `json:"answer"`
	Model  string   `json:"model"`
	Usage  []string `json:"usage"`
}

// GetRecordInput is the input schema for the get_record tool.
type GetRecordInput struct {
	ID int `json:"id" jsonschema:"the record identifier"`
}

// GetRecordOutput is the output schema for the get_record tool.
type GetRecordOutput struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Record string `json:"record"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using only the records in the corpus",
	}, s.handleAsk)

	if s.ports.Corpus != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_record",
			Description: "Get a single corpus record by identifier",
		}, s.handleGetRecord)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, AskOutput{}, errors.New("question is required")
	}

	s.askMu.Lock()
	resp, err := s.ports.Chat.Exchange(ctx, question)
	s.askMu.Unlock()
	if err != nil {
		return nil, AskOutput{}, err
	}

	model := resp.Model
	if model == "" {
		model = s.ports.Chat.ModelName()
	}

	return nil, AskOutput{
		Answer: resp.Content,
		Model:  model,
		Usage:  services.UsageLines(resp),
	}, nil
}

// handleGetRecord handles the get_record tool invocation.
func (s *Server) handleGetRecord(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetRecordInput,
) (*mcp.CallToolResult, GetRecordOutput, error) {
	entry, err := s.ports.Corpus.Get(s.ports.CorpusPath, input.ID)
	if err != nil {
		return nil, GetRecordOutput{}, err
	}

	return nil, GetRecordOutput{
		ID:     entry.ID,
		Name:   entry.Name,
		Record: string(entry.Raw),
	}, nil
}
