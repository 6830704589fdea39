// Package assistant реализует бизнес-логику диалога с пользователем.
package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rss-briefing/internal/domain"
	"rss-briefing/internal/infra/metrics"
)

// errorReply — синтетический ответ ассистента при сбое хода. Транскрипт
// остаётся упорядоченным журналом попыток, а не только успехов.
const errorReply = "⚠️ Sorry, I encountered an error connecting to the AI service."

// Service ведёт диалог: реплики добавляются строго в порядке отправки,
// неудачный ход оставляет в истории видимое сообщение об ошибке.
type Service struct {
	store   domain.StateStore
	gateway domain.ModelGateway
}

var _ domain.AssistantService = (*Service)(nil)

// NewService создаёт сервис диалога.
func NewService(store domain.StateStore, gateway domain.ModelGateway) *Service {
	return &Service{store: store, gateway: gateway}
}

// Send добавляет реплику пользователя, выполняет один вызов шлюза и
// добавляет ответ ассистента с цитатами. История для payload снимается
// до новой реплики: текущее сообщение уходит отдельным полем.
// Предложение модели обновить профиль только возвращается наружу —
// применять его должен пользователь явно.
func (s *Service) Send(ctx context.Context, text string) (domain.ChatTurn, error) {
	profile := s.store.Profile()
	items := s.store.Items()
	history := s.store.ChatHistory()

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
	}
	s.store.AppendChatMessage(userMsg)

	resp, err := s.gateway.Chat(ctx, text, history, profile, items)
	metrics.ObserveChatRequest(err)
	if err != nil {
		s.store.AppendChatMessage(domain.ChatMessage{
			ID:        uuid.NewString(),
			Role:      domain.RoleAssistant,
			Content:   errorReply,
			Timestamp: time.Now().UTC(),
		})
		return domain.ChatTurn{}, err
	}

	assistantMsg := domain.ChatMessage{
		ID:                uuid.NewString(),
		Role:              domain.RoleAssistant,
		Content:           resp.AssistantReplyMarkdown,
		Timestamp:         time.Now().UTC(),
		ReferencedReports: resp.ReferencedReports,
		ReferencedSources: resp.ReferencedSources,
	}
	s.store.AppendChatMessage(assistantMsg)
	return domain.ChatTurn{Message: assistantMsg, Response: resp}, nil
}
