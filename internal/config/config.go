package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
)

var defaultModels = map[string]string{
	ProviderGemini:      "gemini-2.5-flash",
	ProviderHuggingFace: "meta-llama/Llama-3.2-3B-Instruct",
}

type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type LLMConfig struct {
	Provider        string
	APIKey          string
	Model           string
	MaxOutputTokens int
	Temperature     float32
	// BaseURL overrides the provider endpoint; empty uses the provider default.
	BaseURL string
	// ThinkingBudget caps Gemini thinking tokens. Negative leaves the model default.
	ThinkingBudget int
}

type UploadConfig struct {
	MaxFileSize int64
}

type AnalysisConfig struct {
	Concurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "120s"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		LLM: LLMConfig{
			Provider:        provider,
			APIKey:          apiKeyFor(provider),
			Model:           getEnv("LLM_MODEL", defaultModels[provider]),
			MaxOutputTokens: getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 512),
			Temperature:     getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			BaseURL:         getEnv("LLM_BASE_URL", ""),
			ThinkingBudget:  getEnvAsInt("GEMINI_THINKING_BUDGET", 0),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Analysis: AnalysisConfig{
			Concurrency: getEnvAsInt("ANALYSIS_CONCURRENCY", 5),
		},
	}
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected %q or %q)", c.LLM.Provider, ProviderGemini, ProviderHuggingFace)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("missing API token for provider %q: set %s", c.LLM.Provider, apiKeyEnv(c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLM.MaxOutputTokens <= 0 {
		return fmt.Errorf("LLM_MAX_OUTPUT_TOKENS must be positive, got %d", c.LLM.MaxOutputTokens)
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Upload.MaxFileSize)
	}
	if c.Analysis.Concurrency <= 0 {
		return fmt.Errorf("ANALYSIS_CONCURRENCY must be positive, got %d", c.Analysis.Concurrency)
	}
	return nil
}

func apiKeyEnv(provider string) string {
	if provider == ProviderHuggingFace {
		return "HUGGINGFACEHUB_API_TOKEN"
	}
	return "GEMINI_API_KEY"
}

func apiKeyFor(provider string) string {
	return getEnv(apiKeyEnv(provider), "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
