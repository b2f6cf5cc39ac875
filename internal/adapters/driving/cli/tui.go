package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Chat in a full-screen terminal UI",
	Long: `Launch the full-screen chat interface. Answers are grounded on the corpus
exactly as in 'corpuschat chat'.

Controls:
  Enter        - Ask
  PgUp/PgDn    - Scroll transcript
  Ctrl+L       - Clear transcript
  Esc, Ctrl+C  - Quit (or type 'quit')`,
	RunE: runTUI,
}

var tuiFlags sessionFlags

func init() {
	tuiFlags.register(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	session, provider, err := tuiFlags.open(cmd, tuiFlags.provider)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	app, err := tui.NewApp(&tui.Ports{Chat: session, Provider: provider})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
