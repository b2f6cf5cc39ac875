// Package cli provides the cobra command tree for corpuschat.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// ChatStarter opens a grounded chat session.
type ChatStarter func(ctx context.Context, settings domain.LLMSettings, corpusPath string) (driving.ChatService, error)

// APIKeyStore reads and persists provider credentials.
type APIKeyStore interface {
	APIKey(p domain.AIProvider) string
	SetAPIKey(p domain.AIProvider, key string) error
}

// Services holds everything the commands need.
type Services struct {
	Ingest    driving.IngestService
	Corpus    driving.CorpusService
	Settings  driving.SettingsService
	StartChat ChatStarter
	APIKeys   APIKeyStore
}

var (
	ingestService   driving.IngestService
	corpusService   driving.CorpusService
	settingsService driving.SettingsService
	startChat       ChatStarter
	apiKeyStore     APIKeyStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "corpuschat",
	Short: "Build a JSON corpus and chat with an LLM grounded on it",
	Long: `corpuschat fetches records from a public catalogue (PokeAPI or the
Rick and Morty API), writes them to a local JSON corpus, and runs a chat
session that answers questions strictly from that corpus.

Typical workflow:
  corpuschat ingest --dataset characters
  corpuschat chat --provider google`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs to stderr")
}

// Configure injects the services used by the commands.
func Configure(s Services) {
	ingestService = s.Ingest
	corpusService = s.Corpus
	settingsService = s.Settings
	startChat = s.StartChat
	apiKeyStore = s.APIKeys
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Errors not already shown to the user are
// printed to stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !IsReported(err) {
		rootCmd.PrintErrf("Error: %v\n", err)
	}
	return err
}

// reportedError wraps an error whose message was already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported returns true if err was already printed by a command.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// currentSettings returns the merged settings, or the defaults when no
// settings service is configured.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	s, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}
