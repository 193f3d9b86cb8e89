package openaiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Instrução de sistema fixa enviada em toda conversa
const systemInstruction = "Você é um analista de mídia sênior especializado em Meta Ads. " +
	"Nunca invente dados; se não houver dado, diga claramente. " +
	"Responda primeiro à pergunta, depois mostre evidências e ações."

type Client interface {
	// Complete envia o prompt (e o histórico opcional) para o modelo e
	// retorna o texto gerado com espaços das bordas removidos
	Complete(ctx context.Context, prompt string, history []domain.ChatMessage) (string, error)
}

type OpenAIClient struct {
	cfg    *config.Config
	client openai.Client
}

func NewClient(cfg *config.Config) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.OpenAI.Timeout}),
		// Sem retry em nenhuma camada: falhas sobem direto para o chamador
		option.WithMaxRetries(0),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}

	return &OpenAIClient{
		cfg:    cfg,
		client: openai.NewClient(opts...),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string, history []domain.ChatMessage) (string, error) {
	// Credencial verificada antes de qualquer chamada de rede
	if c.cfg.OpenAI.APIKey == "" {
		return "", domain.ErrMissingOpenAIKey
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemInstruction),
	}

	// Mantém apenas os últimos turnos para reduzir tokens; roles fora de
	// user/assistant são tratados como user
	limit := c.cfg.OpenAI.HistoryLimit
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	for _, m := range history {
		if m.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(m.Content))
			continue
		}
		messages = append(messages, openai.UserMessage(m.Content))
	}

	messages = append(messages, openai.UserMessage(prompt))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:            openai.ChatModel(c.cfg.OpenAI.Model),
		Messages:         messages,
		Temperature:      openai.Float(c.cfg.OpenAI.Temperature),
		MaxTokens:        openai.Int(int64(c.cfg.OpenAI.MaxTokens)),
		FrequencyPenalty: openai.Float(c.cfg.OpenAI.FrequencyPenalty),
		PresencePenalty:  openai.Float(c.cfg.OpenAI.PresencePenalty),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"model": c.cfg.OpenAI.Model,
			"error": err.Error(),
		}).Error("analyze: chat completion request failed")
		return "", &domain.GenerationError{Err: err}
	}

	if len(completion.Choices) == 0 {
		return "", &domain.GenerationError{Err: errors.New("resposta vazia do modelo")}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
