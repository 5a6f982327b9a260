// Package language holds the text-completion providers behind the
// ports.LanguageModel interface. Providers are selected by
// configuration; the rest of the system only sees free text in and out.
package language

import (
	"context"
	"fmt"

	"insightapi/application/ports"
	"insightapi/infrastructure/config"
	pkgerrors "insightapi/pkg/errors"
)

// Provider names accepted in configuration
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// New creates the language model provider named in the configuration.
// A missing API key does not fail here: the returned provider errors at
// call time, so the process starts and every other endpoint keeps
// working.
func New(ctx context.Context, cfg *config.Config) (ports.LanguageModel, error) {
	if cfg.LLMAPIKey == "" {
		return &unconfiguredModel{provider: cfg.LLMProvider}, nil
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI:
		return NewOpenAIModel(ctx, cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	case ProviderAnthropic:
		return NewAnthropicModel(cfg.LLMAPIKey, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}

// unconfiguredModel stands in when no API key was supplied
type unconfiguredModel struct {
	provider string
}

func (m *unconfiguredModel) Complete(ctx context.Context, prompt string) (string, error) {
	return "", pkgerrors.NewUpstreamError("language backend",
		fmt.Errorf("no API key configured for provider %q", m.provider))
}
