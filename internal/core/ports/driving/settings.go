package driving

import "github.com/custodia-labs/corpuschat/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the model provider and, optionally, the model.
	SetLLMProvider(provider domain.AIProvider, model string) error

	// SetValue stores a single key from the settings file.
	SetValue(key, value string) error

	// Validate checks that the current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
