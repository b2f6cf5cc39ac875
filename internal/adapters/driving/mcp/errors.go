// Package mcp provides an MCP (Model Context Protocol) server adapter for corpuschat.
// It lets AI assistants ask grounded questions and read records from the corpus.
package mcp

import "errors"

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("mcp: chat service is required")

// ErrMissingCorpusPath is returned when a corpus service is given without a path.
var ErrMissingCorpusPath = errors.New("mcp: corpus path is required with a corpus service")
