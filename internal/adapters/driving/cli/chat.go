package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with a model grounded on a corpus",
	Long: `Start a line-oriented chat session. Every question is answered from the
corpus file only; the model sees the grounding instruction and the current
question, with no history.

Type 'quit' (any case) or press Ctrl-D to end the session.

When --provider is omitted on an interactive terminal you are asked to
choose one; otherwise the configured provider is used.`,
	RunE: runChat,
}

// sessionFlags are shared by every command that opens a chat session.
type sessionFlags struct {
	provider string
	model    string
	corpus   string
}

var chatFlags sessionFlags

// stdinIsTerminal reports whether the provider prompt should be shown.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	chatFlags.register(chatCmd)
	rootCmd.AddCommand(chatCmd)
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "Model provider (google, openai)")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Model name (default: provider default)")
	cmd.Flags().StringVarP(&f.corpus, "corpus", "c", "", "Corpus file (default: from settings)")
}

// resolve merges the flags over the configured settings.
// A provider that differs from the configured one drops the configured
// model and endpoint.
func (f *sessionFlags) resolve(providerName string) (domain.LLMSettings, string, error) {
	settings, err := currentSettings()
	if err != nil {
		return domain.LLMSettings{}, "", err
	}

	llm := settings.LLM
	if providerName != "" {
		p, err := domain.ParseAIProvider(providerName)
		if err != nil {
			return domain.LLMSettings{}, "", err
		}
		if p != llm.Provider {
			llm.Model = ""
			llm.BaseURL = ""
		}
		llm.Provider = p
	}
	if f.model != "" {
		llm.Model = f.model
	}

	corpus := settings.CorpusPath()
	if f.corpus != "" {
		corpus = f.corpus
	}
	return llm, corpus, nil
}

// open resolves settings and starts a session. Setup failures are printed
// as "Setup error: ..." and returned already reported.
func (f *sessionFlags) open(cmd *cobra.Command, providerName string) (driving.ChatService, domain.AIProvider, error) {
	if startChat == nil {
		return nil, "", errors.New("chat service not configured")
	}

	llm, corpus, err := f.resolve(providerName)
	if err == nil {
		var session driving.ChatService
		session, err = startChat(cmd.Context(), llm, corpus)
		if err == nil {
			return session, llm.Provider, nil
		}
	}

	cmd.Printf("Setup error: %v\n", err)
	return nil, "", reported(err)
}

func runChat(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())

	providerName := chatFlags.provider
	if providerName == "" && stdinIsTerminal() {
		cmd.Print("Choose provider (google/openai): ")
		providerName = readLine(in)
	}

	session, _, err := chatFlags.open(cmd, providerName)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	return session.Run(cmd.Context(), in, cmd.OutOrStdout())
}
