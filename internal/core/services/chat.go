package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

// Ensure ChatSession implements the interface.
var _ driving.ChatService = (*ChatSession)(nil)

// quitCommand ends a session. Matched case-insensitively after trimming.
const quitCommand = "quit"

// maxLineSize bounds a single line of user input.
const maxLineSize = 1 << 20

// ChatSession answers questions from a fixed grounding context.
// Every exchange is stateless: the model sees the system instruction and
// the current question only.
type ChatSession struct {
	model     driven.RemoteModel
	grounding *domain.GroundingContext
}

// NewChatSession validates the provider, builds the grounding context from
// corpusPath and creates the remote model, in that order. No model is
// created when the corpus is missing or invalid.
func NewChatSession(
	ctx context.Context,
	models driven.ModelFactory,
	grounding driving.GroundingService,
	settings domain.LLMSettings,
	corpusPath string,
) (*ChatSession, error) {
	if !settings.Provider.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProvider, settings.Provider)
	}

	gc, err := grounding.Build(corpusPath)
	if err != nil {
		return nil, err
	}

	model, err := models.Create(ctx, settings)
	if err != nil {
		return nil, err
	}

	logger.Info("Chat session using %s %s with %d records from %s",
		model.Provider(), model.ModelName(), gc.RecordCount, gc.CorpusPath)
	return NewChatSessionWithModel(model, gc), nil
}

// NewChatSessionWithModel creates a session from an existing model.
func NewChatSessionWithModel(model driven.RemoteModel, grounding *domain.GroundingContext) *ChatSession {
	return &ChatSession{model: model, grounding: grounding}
}

// Exchange sends one user message with the grounding context.
func (s *ChatSession) Exchange(ctx context.Context, text string) (*domain.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty message", domain.ErrInvalidInput)
	}
	return s.model.Complete(ctx, s.grounding.Turn(text))
}

// Run prints the banner and then reads one question per line until "quit"
// or end of input. Blank lines are ignored. A failed exchange is printed
// as "Error: ..." and the loop continues.
func (s *ChatSession) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "%s Chatbot started! Type '%s' to exit.\n", s.model.Provider().Title(), quitCommand)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)

	for {
		fmt.Fprint(out, "\nYou: ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			select {
			case err := <-readErr:
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			default:
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		input := strings.TrimSpace(line)
		if strings.EqualFold(input, quitCommand) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if input == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := s.Exchange(ctx, input)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "Bot: %s\n", resp.Content)
		for _, u := range UsageLines(resp) {
			fmt.Fprintln(out, u)
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not keep
// Run from seeing cancellation. The error channel is filled before lines
// is closed, unless the context ended the scan.
//
// Cancelling ctx cannot interrupt a Read already in progress. After Run
// returns the goroutine stays parked in scanner.Scan until in yields data,
// EOF or an error. in is never closed here; a caller that needs the
// goroutine gone closes its own reader.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	return lines, errs
}

// Context returns the session's grounding context.
func (s *ChatSession) Context() *domain.GroundingContext {
	return s.grounding
}

// ModelName returns the remote model in use.
func (s *ChatSession) ModelName() string {
	return s.model.ModelName()
}

// Provider returns the provider of the remote model.
func (s *ChatSession) Provider() domain.AIProvider {
	return s.model.Provider()
}

// Close releases the remote model.
func (s *ChatSession) Close() error {
	return s.model.Close()
}

// UsageLines renders the usage section printed after each answer.
// Provider accounting takes precedence over response metadata.
func UsageLines(resp *domain.ChatResponse) []string {
	switch {
	case resp.Accounting != nil:
		a := resp.Accounting
		return []string{
			fmt.Sprintf("Prompt tokens: %d", a.PromptTokens),
			fmt.Sprintf("Completion tokens: %d", a.CompletionTokens),
			fmt.Sprintf("Total tokens: %d", a.TotalTokens),
			fmt.Sprintf("Total cost (USD): $%.6f", a.TotalCost),
		}
	case resp.Metadata != nil:
		m := resp.Metadata
		return []string{
			fmt.Sprintf("Input tokens: %d", m.InputTokens),
			fmt.Sprintf("Output tokens: %d", m.OutputTokens),
			fmt.Sprintf("Total tokens: %d", m.TotalTokens),
		}
	default:
		return []string{"Usage not available for this provider."}
	}
}
