package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for corpuschat resources.
	uriScheme = "corpus://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "grounding",
		Name:        "grounding",
		Description: "System instruction the chat session is grounded on",
		MIMEType:    "text/plain",
	}, s.handleGroundingResource)

	if s.ports.Corpus == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "Identifiers and names of every record in the corpus",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{id}",
		Name:        "record",
		Description: "A single corpus record",
		MIMEType:    "application/json",
	}, s.handleRecordResource)
}

// handleGroundingResource returns the session's system instruction.
func (s *Server) handleGroundingResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	gc := s.ports.Chat.Context()
	if gc == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     gc.Instruction,
		}},
	}, nil
}

// handleRecordsResource lists the records in the corpus.
func (s *Server) handleRecordsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Corpus.List(s.ports.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	type recordInfo struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		URI  string `json:"uri"`
	}

	infos := make([]recordInfo, len(entries))
	for i, e := range entries {
		infos[i] = recordInfo{
			ID:   e.ID,
			Name: e.Name,
			URI:  uriScheme + "records/" + strconv.Itoa(e.ID),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecordResource returns one record as persisted.
func (s *Server) handleRecordResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRecordID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Corpus.Get(s.ports.CorpusPath, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(entry.Raw),
		}},
	}, nil
}

// extractRecordID extracts the identifier from a URI like corpus://records/{id}.
func extractRecordID(uri string) (int, bool) {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
