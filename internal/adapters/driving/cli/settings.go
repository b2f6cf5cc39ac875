package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the model provider, ingest defaults and chat corpus.

Settings are stored in ~/.corpuschat/config.toml. API keys are stored in
~/.corpuschat/.env and may also come from the environment.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single key in the settings file. An empty value removes the key
so the default applies again. Run 'corpuschat settings keys' to list keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range services.SettingKeys() {
			cmd.Println(k)
		}
	},
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider",
	Short: "Configure the model provider",
	Long:  `Choose the model provider and model, and store an API key if none is set.`,
	RunE:  runSettingsProvider,
}

var settingsAPIKeyCmd = &cobra.Command{
	Use:   "api-key [provider]",
	Short: "Store an API key",
	Long: `Store the API key for a provider (default: the configured provider).
The key is read without echo and saved to ~/.corpuschat/.env.
Enter an empty key to remove the stored key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsAPIKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsAPIKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.ModelOrDefault())
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	cmd.Printf("  Temperature: %.2f\n", settings.LLM.Temperature)
	if apiKeyStore != nil {
		if key := apiKeyStore.APIKey(settings.LLM.Provider); key != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(key))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	cmd.Println()

	cmd.Println("[Ingest]")
	cmd.Printf("  Dataset: %s\n", settings.Ingest.Dataset.Description())
	r := settings.Ingest.Range
	if !r.IsValid() {
		r = settings.Ingest.Dataset.DefaultRange()
	}
	cmd.Printf("  Range: %d-%d\n", r.Start, r.End)
	output := settings.Ingest.Output
	if output == "" {
		output = settings.Ingest.Dataset.DefaultOutput()
	}
	cmd.Printf("  Output: %s\n", output)
	cmd.Println()

	cmd.Println("[Chat]")
	cmd.Printf("  Corpus: %s\n", settings.CorpusPath())
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'corpuschat settings provider' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.SetValue(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if value == "" {
		cmd.Printf("Removed %s\n", key)
	} else {
		cmd.Printf("Set %s = %s\n", key, value)
	}
	return nil
}

func runSettingsProvider(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	idx := parseChoice(readLine(reader), len(providers), 1)
	selected := providers[idx-1]

	defaultModel := domain.DefaultLLMModels()[selected]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == defaultModel {
		model = ""
	}

	if err := settingsService.SetLLMProvider(selected, model); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	if apiKeyStore != nil && apiKeyStore.APIKey(selected) == "" {
		cmd.Print("Enter API key (leave blank to skip): ")
		key := readPassword(in, reader)
		cmd.Println()
		if key != "" {
			if err := apiKeyStore.SetAPIKey(selected, key); err != nil {
				return fmt.Errorf("failed to store API key: %w", err)
			}
		}
	}

	cmd.Print("Validating configuration... ")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return reported(fmt.Errorf("LLM configuration validation failed: %w", err))
	}
	cmd.Println("OK")

	if model == "" {
		model = defaultModel
	}
	cmd.Printf("LLM provider configured: %s (%s)\n", selected.Description(), model)
	return nil
}

func runSettingsAPIKey(cmd *cobra.Command, args []string) error {
	if apiKeyStore == nil {
		return errors.New("API key store not configured")
	}

	var provider domain.AIProvider
	if len(args) > 0 {
		p, err := domain.ParseAIProvider(args[0])
		if err != nil {
			return err
		}
		provider = p
	} else {
		settings, err := currentSettings()
		if err != nil {
			return err
		}
		provider = settings.LLM.Provider
	}

	in := cmd.InOrStdin()
	cmd.Printf("Enter %s API key: ", provider.Title())
	key := readPassword(in, bufio.NewReader(in))
	cmd.Println()

	if err := apiKeyStore.SetAPIKey(provider, key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	if key == "" {
		cmd.Printf("Removed %s API key\n", provider.Title())
	} else {
		cmd.Printf("Stored %s API key %s\n", provider.Title(), maskAPIKey(key))
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads a secret without echo when in is the terminal,
// otherwise a plain line from reader.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
