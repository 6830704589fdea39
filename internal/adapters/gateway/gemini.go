// Package gateway владеет исходящим вызовом генеративного сервиса:
// собирает payload, запрашивает схему активного режима и прогоняет сырой
// ответ через валидатор. Ровно один синхронный вызов на обращение,
// без повторов и восстановления после сбоев.
package gateway

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"rss-briefing/internal/adapters/prompt"
	"rss-briefing/internal/adapters/validate"
	"rss-briefing/internal/domain"
	"rss-briefing/internal/infra/metrics"
)

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, operation, systemInstruction, payload string, schema *genai.Schema) (string, error)
}

// Gemini реализует доменный шлюз модели поверх Gemini.
type Gemini struct {
	client jsonGenerator
}

var _ domain.ModelGateway = (*Gemini)(nil)

// NewGemini создаёт шлюз модели.
func NewGemini(client jsonGenerator) *Gemini {
	return &Gemini{client: client}
}

// GenerateReport строит payload отчёта, вызывает модель со схемой отчёта
// и возвращает проверенный результат. Шлюз работает с копиями состояния
// и не трогает хранилище.
func (g *Gemini) GenerateReport(ctx context.Context, profile domain.UserProfile, prefs domain.ReportPreferences, channels domain.DeliveryChannels, items []domain.RSSItem) (domain.GeneratedReport, error) {
	payload, err := prompt.BuildReportPayload(profile, prefs, channels, items)
	if err != nil {
		return domain.GeneratedReport{}, err
	}
	raw, err := g.client.GenerateJSON(ctx, "generate_report", systemInstruction, string(payload), reportSchema())
	if err != nil {
		return domain.GeneratedReport{}, err
	}
	report, err := validate.Report(raw, items)
	observeRejection("generate_report", err)
	return report, err
}

// Chat строит payload диалога, вызывает модель со схемой ответа ассистента
// и возвращает проверенный результат.
func (g *Gemini) Chat(ctx context.Context, query string, history []domain.ChatMessage, profile domain.UserProfile, items []domain.RSSItem) (domain.ChatResponse, error) {
	payload, err := prompt.BuildChatPayload(query, history, profile, items)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	raw, err := g.client.GenerateJSON(ctx, "chat", systemInstruction, string(payload), chatSchema())
	if err != nil {
		return domain.ChatResponse{}, err
	}
	resp, err := validate.Chat(raw, items)
	observeRejection("chat", err)
	return resp, err
}

func observeRejection(mode string, err error) {
	if err == nil {
		return
	}
	var svErr *domain.SchemaViolationError
	var ugErr *domain.UngroundedSourceError
	switch {
	case errors.As(err, &svErr):
		metrics.IncResponseRejection(mode, "schema_violation")
	case errors.As(err, &ugErr):
		metrics.IncResponseRejection(mode, "ungrounded_source")
	}
}
