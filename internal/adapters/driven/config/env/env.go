// Package env loads process-wide credentials and overrides from the
// environment. Values in .env files are applied first without overriding
// variables that are already set, then the environment is decoded with
// envconfig.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// DotEnvFile is the name of the dotenv file read from the working directory
// and from the config directory.
const DotEnvFile = ".env"

// Config is the environment-supplied configuration.
type Config struct {
	GoogleAPIKey  string `envconfig:"GOOGLE_API_KEY"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	// Provider, Model and BaseURL override the settings file.
	Provider string `envconfig:"CORPUSCHAT_PROVIDER"`
	Model    string `envconfig:"CORPUSCHAT_MODEL"`
	BaseURL  string `envconfig:"CORPUSCHAT_BASE_URL"`

	// Home overrides the config directory (~/.corpuschat).
	Home string `envconfig:"CORPUSCHAT_HOME"`
}

// Load applies the given dotenv files, skipping ones that don't exist, and
// decodes the environment.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultFiles returns the dotenv files read at startup: the working
// directory first, then the config directory.
func DefaultFiles(configDir string) []string {
	files := []string{DotEnvFile}
	if configDir != "" {
		files = append(files, filepath.Join(configDir, DotEnvFile))
	}
	return files
}

// Validate checks override values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return nil
	}
	if _, err := domain.ParseAIProvider(c.Provider); err != nil {
		return fmt.Errorf("CORPUSCHAT_PROVIDER=%q: %w", c.Provider, err)
	}
	return nil
}

// APIKeys returns the configured credential for each provider.
// Providers without a credential are omitted.
func (c *Config) APIKeys() map[domain.AIProvider]string {
	keys := make(map[domain.AIProvider]string)
	if c.GoogleAPIKey != "" {
		keys[domain.AIProviderGoogle] = c.GoogleAPIKey
	}
	if c.OpenAIAPIKey != "" {
		keys[domain.AIProviderOpenAI] = c.OpenAIAPIKey
	}
	return keys
}

// KeyVar returns the environment variable holding a provider's credential.
func KeyVar(p domain.AIProvider) (string, error) {
	switch p {
	case domain.AIProviderGoogle:
		return "GOOGLE_API_KEY", nil
	case domain.AIProviderOpenAI:
		return "OPENAI_API_KEY", nil
	default:
		return "", domain.ErrInvalidProvider
	}
}

// SaveAPIKey stores a provider credential in the dotenv file at path,
// keeping any other variables already in it.
func SaveAPIKey(path string, p domain.AIProvider, key string) error {
	name, err := KeyVar(p)
	if err != nil {
		return err
	}

	vars := map[string]string{}
	if _, err := os.Stat(path); err == nil {
		existing, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		vars = existing
	}

	if key == "" {
		delete(vars, name)
	} else {
		vars[name] = key
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Chmod(path, 0600)
}
