package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/corpuschat/internal/core/services"
)

// quitWord ends the session when typed as a question.
const quitWord = "quit"

// chromeHeight is the number of rows used by the header, input and status bar.
const chromeHeight = 6

// App is the chat application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input     *input.QuestionInput
	statusBar *status.Bar
	viewport  viewport.Model

	// entries is the transcript, oldest first.
	entries []messages.Entry

	// pending is true while a model call is in flight.
	pending bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := status.NewBar(s, km)
	records := 0
	if gc := ports.Chat.Context(); gc != nil {
		records = gc.RecordCount
	}
	bar.SetSession(ports.Chat.ModelName(), records)

	a := &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewQuestionInput(s),
		statusBar: bar,
		viewport:  viewport.New(80, 20),
	}
	a.entries = []messages.Entry{{
		Kind: messages.EntryInfo,
		Text: fmt.Sprintf("%s Chatbot started! Type '%s' to exit.", ports.Provider.Title(), quitWord),
	}}
	a.refresh()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("corpuschat"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.SetWidth(msg.Width)
		a.statusBar.SetWidth(msg.Width)
		a.viewport.Width = msg.Width
		a.viewport.Height = max(msg.Height-chromeHeight, 3)
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.QuestionSubmitted:
		return a, a.ask(msg.Question)

	case messages.AnswerReceived:
		a.handleAnswer(msg)
		return a, nil

	case messages.TranscriptCleared:
		a.entries = nil
		a.refresh()
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Send):
		if a.pending {
			return a, nil
		}
		question := strings.TrimSpace(a.input.Value())
		a.input.Reset()
		if strings.EqualFold(question, quitWord) {
			return a, tea.Quit
		}
		if question == "" {
			return a, nil
		}
		return a, func() tea.Msg { return messages.QuestionSubmitted{Question: question} }

	case keymap.Matches(k, a.keymap.ScrollUp):
		a.viewport.HalfPageUp()
		return a, nil

	case keymap.Matches(k, a.keymap.ScrollDown):
		a.viewport.HalfPageDown()
		return a, nil

	case keymap.Matches(k, a.keymap.Clear):
		return a, func() tea.Msg { return messages.TranscriptCleared{} }
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// ask records the question and returns a command that calls the model.
func (a *App) ask(question string) tea.Cmd {
	a.pending = true
	a.statusBar.SetState(status.StateThinking)
	a.entries = append(a.entries, messages.Entry{Kind: messages.EntryUser, Text: question})
	a.refresh()

	chat := a.ports.Chat
	ctx := a.ctx
	return func() tea.Msg {
		resp, err := chat.Exchange(ctx, question)
		return messages.AnswerReceived{Question: question, Response: resp, Err: err}
	}
}

func (a *App) handleAnswer(msg messages.AnswerReceived) {
	a.pending = false

	if msg.Err != nil {
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		a.entries = append(a.entries, messages.Entry{Kind: messages.EntryError, Text: msg.Err.Error()})
		a.refresh()
		return
	}

	a.statusBar.Clear()
	a.entries = append(a.entries, messages.Entry{Kind: messages.EntryBot, Text: msg.Response.Content})
	for _, line := range services.UsageLines(msg.Response) {
		a.entries = append(a.entries, messages.Entry{Kind: messages.EntryUsage, Text: line})
	}
	a.refresh()
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (a *App) refresh() {
	width := a.viewport.Width
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width)

	lines := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		lines = append(lines, wrap.Render(a.renderEntry(e)))
	}
	a.viewport.SetContent(strings.Join(lines, "\n"))
	a.viewport.GotoBottom()
}

func (a *App) renderEntry(e messages.Entry) string {
	switch e.Kind {
	case messages.EntryUser:
		return "\n" + a.styles.UserLabel.Render("You: ") + a.styles.Normal.Render(e.Text)
	case messages.EntryBot:
		return a.styles.BotLabel.Render("Bot: ") + a.styles.Normal.Render(e.Text)
	case messages.EntryUsage:
		return a.styles.Muted.Render(e.Text)
	case messages.EntryError:
		return a.styles.Error.Render("Error: " + e.Text)
	default:
		return a.styles.Title.Render(e.Text)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.styles.Title.Render("corpuschat")
	if gc := a.ports.Chat.Context(); gc != nil {
		header += a.styles.Muted.Render("  " + gc.CorpusPath)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.viewport.View(),
		a.input.View(),
		a.statusBar.View(),
	)
}

// Entries returns a copy of the transcript.
func (a *App) Entries() []messages.Entry {
	out := make([]messages.Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Pending reports whether a model call is in flight.
func (a *App) Pending() bool {
	return a.pending
}
