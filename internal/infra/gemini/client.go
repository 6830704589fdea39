package gemini

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"rss-briefing/internal/domain"
	"rss-briefing/internal/infra/metrics"
)

const defaultModel = "gemini-3-flash-preview"

// Client выполняет структурированные запросы к Gemini.
type Client struct {
	api     *genai.Client
	model   string
	timeout time.Duration
}

// NewClient создаёт клиента Gemini.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &domain.TransportError{Operation: "client_init", Err: err}
	}
	return &Client{api: api, model: model, timeout: timeout}, nil
}

// Model возвращает идентификатор используемой модели.
func (c *Client) Model() string {
	return c.model
}

// GenerateJSON выполняет один синхронный вызов модели: системная инструкция,
// сериализованный payload и схема ответа для активного режима. Ответ всегда
// просим в формате application/json. Повторов нет.
func (c *Client) GenerateJSON(ctx context.Context, operation, systemInstruction, payload string, schema *genai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}

	start := time.Now()
	resp, err := c.api.Models.GenerateContent(ctx, c.model, genai.Text(payload), cfg)
	if err != nil {
		metrics.ObserveNetworkRequest("gemini", operation, c.model, start, err)
		return "", &domain.TransportError{Operation: operation, Err: err}
	}
	metrics.ObserveNetworkRequest("gemini", operation, c.model, start, nil)

	if usage := resp.UsageMetadata; usage != nil {
		metrics.ObserveLLMGeneration(c.model, operation, time.Since(start),
			int(usage.PromptTokenCount), int(usage.CandidatesTokenCount), int(usage.TotalTokenCount))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &domain.EmptyResponseError{Operation: operation}
	}
	return text, nil
}
