package factory

import (
	"fmt"
	"time"

	"neurostudy-be/pkg/llm"
	"neurostudy-be/pkg/llm/gemini"
	"neurostudy-be/pkg/llm/ollama"
)

type ProviderConfig struct {
	Provider      string // "gemini" or "ollama"
	Model         string
	APIKey        string
	OllamaBaseURL string
	Timeout       time.Duration
}

// NewLLMProvider never fails on a missing API key; the provider reports
// llm.ErrMissingCredential on first use instead.
func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		return gemini.NewProvider(cfg.APIKey, cfg.Model, cfg.Timeout), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
