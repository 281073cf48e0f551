package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Client turns a prompt into text. Implementations ask for JSON output when
// the backend supports it.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Disable  bool
}

// New builds the client named by cfg.Provider. It returns (nil, nil) when the
// LLM is disabled or no API key is configured; callers treat a nil Client as
// "use the built-in text".
func New(ctx context.Context, cfg Config) (Client, error) {
	if cfg.Disable || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
