package services

import (
	"context"
	"fmt"

	"alfredoptarigan/cv-reviewer/internal/config"
)

// LLMService sends a single prompt to the configured model and returns the
// raw completion. Implementations do not retry or stream.
type LLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(cfg)
	case config.ProviderHuggingFace:
		return NewHuggingFaceService(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
