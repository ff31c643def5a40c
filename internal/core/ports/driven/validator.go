package driven

import "github.com/lexislabs/lexis-cli/internal/core/domain"

// AIConfigValidator validates AI provider configurations by reaching
// out to the configured provider.
type AIConfigValidator interface {
	// ValidateEmbedding checks that the embedding configuration works.
	ValidateEmbedding(settings *domain.EmbeddingSettings) error

	// ValidateLLM checks that the LLM configuration works.
	ValidateLLM(settings *domain.LLMSettings) error
}
