package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"rss-briefing/internal/adapters/feed"
	"rss-briefing/internal/adapters/repo"
	"rss-briefing/internal/domain"
)

type stubGateway struct {
	replies   []string
	errs      []error
	calls     int
	histories [][]domain.ChatMessage
}

func (s *stubGateway) GenerateReport(context.Context, domain.UserProfile, domain.ReportPreferences, domain.DeliveryChannels, []domain.RSSItem) (domain.GeneratedReport, error) {
	return domain.GeneratedReport{}, errors.New("не используется")
}

func (s *stubGateway) Chat(_ context.Context, _ string, history []domain.ChatMessage, _ domain.UserProfile, _ []domain.RSSItem) (domain.ChatResponse, error) {
	idx := s.calls
	s.calls++
	s.histories = append(s.histories, history)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return domain.ChatResponse{}, s.errs[idx]
	}
	reply := "ok"
	if idx < len(s.replies) {
		reply = s.replies[idx]
	}
	return domain.ChatResponse{
		Mode:                   domain.ModeChatRAG,
		AssistantReplyMarkdown: reply,
		ReferencedReports:      []domain.ReferencedReport{},
		ReferencedSources:      []domain.ReferencedSource{},
	}, nil
}

func newTestStore() *repo.Memory {
	return repo.NewMemory(feed.SeedProfile(), feed.SeedPreferences(), feed.SeedChannels(), feed.SeedItems(time.Now()))
}

func TestSendKeepsStrictOrder(t *testing.T) {
	store := newTestStore()
	gw := &stubGateway{replies: []string{"reply-A", "reply-B"}}
	service := NewService(store, gw)

	if _, err := service.Send(context.Background(), "A"); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if _, err := service.Send(context.Background(), "B"); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	history := store.ChatHistory()
	want := []string{"A", "reply-A", "B", "reply-B"}
	if len(history) != len(want) {
		t.Fatalf("ожидали %d реплик, получили %d", len(want), len(history))
	}
	for i, content := range want {
		if history[i].Content != content {
			t.Fatalf("позиция %d: ожидали %q, получили %q", i, content, history[i].Content)
		}
	}
}

func TestSendAppendsErrorTurn(t *testing.T) {
	store := newTestStore()
	gw := &stubGateway{
		errs:    []error{&domain.TransportError{Operation: "chat", Err: errors.New("timeout")}},
		replies: []string{"", "reply-B"},
	}
	service := NewService(store, gw)

	if _, err := service.Send(context.Background(), "A"); err == nil {
		t.Fatalf("ожидали ошибку транспорта")
	}
	if _, err := service.Send(context.Background(), "B"); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	history := store.ChatHistory()
	if len(history) != 4 {
		t.Fatalf("неудачный ход тоже оставляет две реплики, получили %d", len(history))
	}
	if history[1].Role != domain.RoleAssistant {
		t.Fatalf("после ошибки должна идти реплика ассистента")
	}
	if history[1].Content == "" || history[1].Content == "reply-A" {
		t.Fatalf("ошибка должна оставить синтетическое сообщение, получили %q", history[1].Content)
	}
	if history[2].Content != "B" || history[3].Content != "reply-B" {
		t.Fatalf("порядок попыток должен сохраниться")
	}
}

func TestSendPassesHistoryWithoutCurrentMessage(t *testing.T) {
	store := newTestStore()
	gw := &stubGateway{replies: []string{"reply-A", "reply-B"}}
	service := NewService(store, gw)

	if _, err := service.Send(context.Background(), "A"); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if _, err := service.Send(context.Background(), "B"); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	if len(gw.histories[0]) != 0 {
		t.Fatalf("первый ход уходит с пустой историей")
	}
	second := gw.histories[1]
	if len(second) != 2 || second[0].Content != "A" || second[1].Content != "reply-A" {
		t.Fatalf("второй ход несёт историю до текущего сообщения")
	}
}

func TestSendSurfacesSuggestedUpdates(t *testing.T) {
	store := newTestStore()
	gw := &suggestingGateway{}
	service := NewService(store, gw)

	turn, err := service.Send(context.Background(), "What should I follow?")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if !turn.Response.SuggestedProfileUpdates.ShouldUpdate {
		t.Fatalf("предложение модели должно дойти до вызывающего")
	}
	if got := store.Profile().PrimaryTopics; len(got) != 3 {
		t.Fatalf("предложение не должно применяться к профилю автоматически")
	}
}

type suggestingGateway struct{}

func (s *suggestingGateway) GenerateReport(context.Context, domain.UserProfile, domain.ReportPreferences, domain.DeliveryChannels, []domain.RSSItem) (domain.GeneratedReport, error) {
	return domain.GeneratedReport{}, errors.New("не используется")
}

func (s *suggestingGateway) Chat(context.Context, string, []domain.ChatMessage, domain.UserProfile, []domain.RSSItem) (domain.ChatResponse, error) {
	return domain.ChatResponse{
		Mode:                   domain.ModeChatRAG,
		AssistantReplyMarkdown: "Consider robotics.",
		SuggestedProfileUpdates: domain.SuggestedProfileUpdates{
			ShouldUpdate:     true,
			NewPrimaryTopics: []string{"Robotics"},
			Notes:            "Recent interest in robotics.",
		},
	}, nil
}
