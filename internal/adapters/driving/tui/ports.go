// Package tui provides a full-screen chat interface built on Bubbletea.
package tui

import (
	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Chat answers grounded questions. Required.
	Chat driving.ChatService

	// Provider is shown in the header.
	Provider domain.AIProvider
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
