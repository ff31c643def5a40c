package driving

import "github.com/lexislabs/lexis-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetEmbeddingProvider configures the embedding provider.
	SetEmbeddingProvider(provider domain.AIProvider, model, apiKey string) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateEmbeddingConfig checks the saved embedding configuration
	// by creating and pinging the service.
	ValidateEmbeddingConfig() error

	// ValidateLLMConfig checks the saved LLM configuration by creating
	// and pinging the service.
	ValidateLLMConfig() error
}
