package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/huggingface"

	"alfredoptarigan/cv-reviewer/internal/config"
)

type huggingFaceService struct {
	client          llms.Model
	maxOutputTokens int
	temperature     float64
}

func NewHuggingFaceService(cfg config.LLMConfig) (LLMService, error) {
	opts := []huggingface.Option{
		huggingface.WithToken(cfg.APIKey),
		huggingface.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, huggingface.WithURL(cfg.BaseURL))
	}

	client, err := huggingface.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create huggingface client: %w", err)
	}

	return &huggingFaceService{
		client:          client,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     float64(cfg.Temperature),
	}, nil
}

// Complete implements LLMService. The huggingface client only forwards
// MaxLength, so the output cap is passed that way.
func (h *huggingFaceService) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, h.client, prompt,
		llms.WithMaxLength(h.maxOutputTokens),
		llms.WithTemperature(h.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("huggingface request failed: %w", err)
	}

	return text, nil
}
