package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-reviewer/internal/config"
)

func TestNewLLMService_UnknownProvider(t *testing.T) {
	svc, err := NewLLMService(config.LLMConfig{Provider: "openai", APIKey: "k", Model: "gpt"})

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewLLMService_Gemini(t *testing.T) {
	svc, err := NewLLMService(config.LLMConfig{
		Provider:        config.ProviderGemini,
		APIKey:          "test-key",
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 512,
		Temperature:     0.1,
	})

	require.NoError(t, err)
	gemini, ok := svc.(*geminiService)
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-flash", gemini.modelName)
	assert.Equal(t, int32(512), gemini.maxOutputTokens)
	assert.InDelta(t, 0.1, gemini.temperature, 1e-6)
	assert.Equal(t, 0, gemini.thinkingBudget)
}

func TestNewLLMService_HuggingFace(t *testing.T) {
	svc, err := NewLLMService(config.LLMConfig{
		Provider:        config.ProviderHuggingFace,
		APIKey:          "hf_test",
		Model:           "meta-llama/Llama-3.2-3B-Instruct",
		MaxOutputTokens: 256,
		Temperature:     0.1,
	})

	require.NoError(t, err)
	hf, ok := svc.(*huggingFaceService)
	require.True(t, ok)
	assert.Equal(t, 256, hf.maxOutputTokens)
	assert.InDelta(t, 0.1, hf.temperature, 1e-6)
}

// recordingServer answers every request with status and body and keeps the
// last request body it saw.
type recordingServer struct {
	*httptest.Server

	mu   sync.Mutex
	body map[string]any
	path string
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		rs.mu.Lock()
		rs.body = decoded
		rs.path = r.URL.Path
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastBody() map[string]any {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.body
}

func (rs *recordingServer) lastPath() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.path
}

// containsNumber reports whether want appears anywhere in a decoded JSON value.
func containsNumber(v any, want float64) bool {
	switch v := v.(type) {
	case float64:
		return v == want
	case map[string]any:
		for _, item := range v {
			if containsNumber(item, want) {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if containsNumber(item, want) {
				return true
			}
		}
	}
	return false
}

// findKey returns the first value stored under key anywhere in a decoded JSON value.
func findKey(v any, key string) (any, bool) {
	switch v := v.(type) {
	case map[string]any:
		if value, ok := v[key]; ok {
			return value, true
		}
		for _, item := range v {
			if value, ok := findKey(item, key); ok {
				return value, true
			}
		}
	case []any:
		for _, item := range v {
			if value, ok := findKey(item, key); ok {
				return value, true
			}
		}
	}
	return nil, false
}

func geminiConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider:        config.ProviderGemini,
		APIKey:          "test-key",
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 512,
		Temperature:     0.1,
		BaseURL:         baseURL,
	}
}

func TestGeminiComplete_SendsGenerationConfig(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Jane Doe"}]},"finishReason":"STOP"}]}`)

	svc, err := NewLLMService(geminiConfig(srv.URL))
	require.NoError(t, err)

	text, err := svc.Complete(context.Background(), "What is the name?")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)

	assert.Contains(t, srv.lastPath(), "gemini-2.5-flash:generateContent")

	body := srv.lastBody()
	require.NotNil(t, body)
	genConfig, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing: %v", body)
	assert.InDelta(t, 0.1, genConfig["temperature"], 1e-6)
	assert.EqualValues(t, 512, genConfig["maxOutputTokens"])

	thinking, ok := genConfig["thinkingConfig"].(map[string]any)
	require.True(t, ok, "thinkingConfig missing: %v", genConfig)
	assert.EqualValues(t, 0, thinking["thinkingBudget"])

	prompt, ok := findKey(body["contents"], "text")
	require.True(t, ok)
	assert.Equal(t, "What is the name?", prompt)
}

func TestGeminiComplete_NegativeThinkingBudgetLeavesModelDefault(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`)

	cfg := geminiConfig(srv.URL)
	cfg.ThinkingBudget = -1
	svc, err := NewLLMService(cfg)
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)

	genConfig, ok := srv.lastBody()["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, genConfig, "thinkingConfig")
}

func TestGeminiComplete_ProviderErrorPropagates(t *testing.T) {
	srv := newRecordingServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)

	svc, err := NewLLMService(geminiConfig(srv.URL))
	require.NoError(t, err)

	text, err := svc.Complete(context.Background(), "prompt")

	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini request failed")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiComplete_EmptyTextIsError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[]},"finishReason":"MAX_TOKENS"}]}`)

	svc, err := NewLLMService(geminiConfig(srv.URL))
	require.NoError(t, err)

	text, err := svc.Complete(context.Background(), "prompt")

	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func huggingFaceConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider:        config.ProviderHuggingFace,
		APIKey:          "hf_test",
		Model:           "meta-llama/Llama-3.2-3B-Instruct",
		MaxOutputTokens: 512,
		Temperature:     0.1,
		BaseURL:         baseURL,
	}
}

func TestHuggingFaceComplete_SendsParameters(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[{"generated_text":"Jane Doe"}]`)

	svc, err := NewLLMService(huggingFaceConfig(srv.URL))
	require.NoError(t, err)

	text, err := svc.Complete(context.Background(), "What is the name?")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")

	body := srv.lastBody()
	require.NotNil(t, body)

	temperature, ok := findKey(body, "temperature")
	require.True(t, ok, "temperature missing: %v", body)
	assert.InDelta(t, 0.1, temperature, 1e-6)
	assert.True(t, containsNumber(body, 512), "output cap not sent: %v", body)
}

func TestHuggingFaceComplete_ProviderErrorPropagates(t *testing.T) {
	srv := newRecordingServer(t, http.StatusInternalServerError, `{"error":"model overloaded"}`)

	svc, err := NewLLMService(huggingFaceConfig(srv.URL))
	require.NoError(t, err)

	text, err := svc.Complete(context.Background(), "prompt")

	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huggingface request failed")
}
