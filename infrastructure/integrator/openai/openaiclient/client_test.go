package openaiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			APIKey:           "sk-teste",
			BaseURL:          baseURL,
			Model:            "gpt-4o-mini",
			Temperature:      0.25,
			MaxTokens:        1600,
			FrequencyPenalty: 0.2,
			PresencePenalty:  0.1,
			HistoryLimit:     8,
			Timeout:          5 * time.Second,
		},
	}
}

func TestComplete_MissingAPIKey(t *testing.T) {
	cfg := testConfig("")
	cfg.OpenAI.APIKey = ""

	client := NewClient(cfg)
	_, err := client.Complete(context.Background(), "qualquer prompt", nil)

	// A credencial é verificada antes de qualquer chamada de rede
	assert.ErrorIs(t, err, domain.ErrMissingOpenAIKey)
}

func TestComplete_SendsSystemHistoryAndPrompt(t *testing.T) {
	var captured struct {
		Model    string  `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature      float64 `json:"temperature"`
		MaxTokens        int     `json:"max_tokens"`
		FrequencyPenalty float64 `json:"frequency_penalty"`
		PresencePenalty  float64 `json:"presence_penalty"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Análise pronta.  "}}]
		}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	history := []domain.ChatMessage{
		{Role: "user", Content: "pergunta anterior"},
		{Role: "assistant", Content: "resposta anterior"},
	}

	got, err := client.Complete(context.Background(), "prompt atual", history)

	require.NoError(t, err)
	assert.Equal(t, "Análise pronta.", got) // espaços das bordas removidos

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 0.25, captured.Temperature)
	assert.Equal(t, 1600, captured.MaxTokens)
	assert.Equal(t, 0.2, captured.FrequencyPenalty)
	assert.Equal(t, 0.1, captured.PresencePenalty)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "pergunta anterior", captured.Messages[1].Content)
	assert.Equal(t, "assistant", captured.Messages[2].Role)
	assert.Equal(t, "user", captured.Messages[3].Role)
	assert.Equal(t, "prompt atual", captured.Messages[3].Content)
}

func TestComplete_TrimsHistoryToLimit(t *testing.T) {
	var messageCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		messageCount = len(body.Messages)

		// O turno mais antigo deve ter sido descartado
		for _, m := range body.Messages {
			assert.NotEqual(t, "turno 0", m.Content)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.OpenAI.HistoryLimit = 2

	history := []domain.ChatMessage{
		{Role: "user", Content: "turno 0"},
		{Role: "user", Content: "turno 1"},
		{Role: "assistant", Content: "turno 2"},
	}

	client := NewClient(cfg)
	_, err := client.Complete(context.Background(), "prompt", history)

	require.NoError(t, err)
	// system + 2 turnos de histórico + prompt
	assert.Equal(t, 4, messageCount)
}

func TestComplete_UpstreamErrorBecomesGenerationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limit exceeded"}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.Complete(context.Background(), "prompt", nil)

	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.Complete(context.Background(), "prompt", nil)

	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
}
