// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// QuestionSubmitted is sent when the user asks a question.
type QuestionSubmitted struct {
	Question string
}

// AnswerReceived carries the model's reply, or the error, back to the model.
type AnswerReceived struct {
	Question string
	Response *domain.ChatResponse
	Err      error
}

// TranscriptCleared is sent when the transcript is emptied.
type TranscriptCleared struct{}

// EntryKind identifies a transcript line's role.
type EntryKind int

const (
	// EntryUser is a question typed by the user.
	EntryUser EntryKind = iota
	// EntryBot is a model answer.
	EntryBot
	// EntryUsage is a usage accounting line.
	EntryUsage
	// EntryError is a failed exchange.
	EntryError
	// EntryInfo is a banner or notice.
	EntryInfo
)

// Entry is one line of the transcript.
type Entry struct {
	Kind EntryKind
	Text string
}
