package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alfredoptarigan/cv-reviewer/internal/config"
)

type geminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
	temperature     float32
	thinkingBudget  int
}

func NewGeminiService(cfg config.LLMConfig) (LLMService, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		temperature:     cfg.Temperature,
		thinkingBudget:  cfg.ThinkingBudget,
	}, nil
}

// Complete implements LLMService.
func (g *geminiService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), g.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// generateConfig caps thinking so that thought tokens on 2.5 models do not
// consume the whole output budget.
func (g *geminiService) generateConfig() *genai.GenerateContentConfig {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	if g.thinkingBudget >= 0 {
		genConfig.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(g.thinkingBudget)),
		}
	}

	return genConfig
}
