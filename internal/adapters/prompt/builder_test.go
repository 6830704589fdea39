package prompt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rss-briefing/internal/adapters/feed"
	"rss-briefing/internal/domain"
)

func testInputs() (domain.UserProfile, domain.ReportPreferences, domain.DeliveryChannels, []domain.RSSItem) {
	return feed.SeedProfile(), feed.SeedPreferences(), feed.SeedChannels(), feed.SeedItems(time.Now())
}

func TestBuildReportPayloadRoundTrip(t *testing.T) {
	profile, prefs, channels, items := testInputs()

	body, err := BuildReportPayload(profile, prefs, channels, items)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	var decoded ReportPayload
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("payload должен быть валидным JSON: %v", err)
	}
	if len(decoded.RSSItems) != len(items) {
		t.Fatalf("ожидали %d элементов, получили %d", len(items), len(decoded.RSSItems))
	}
	for i, item := range items {
		if decoded.RSSItems[i].ID != item.ID {
			t.Fatalf("набор идентификаторов должен сохраниться: %q != %q", decoded.RSSItems[i].ID, item.ID)
		}
	}
	if decoded.HistoryContext.RecentReports == nil || len(decoded.HistoryContext.RecentReports) != 0 {
		t.Fatalf("recent_reports должен быть пустым списком")
	}
	if decoded.UserProfile.Name != profile.Name {
		t.Fatalf("профиль должен попасть в payload без изменений")
	}
}

func TestBuildReportPayloadFailsBeforeNetworkOnBadInput(t *testing.T) {
	profile, prefs, channels, items := testInputs()
	prefs.Tone = "sarcastic"

	_, err := BuildReportPayload(profile, prefs, channels, items)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидали ValidationError, получили %v", err)
	}
}

func TestBuildChatPayloadSnippets(t *testing.T) {
	profile, _, _, items := testInputs()
	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "Hello"},
		{Role: domain.RoleAssistant, Content: "Hi!"},
	}

	body, err := BuildChatPayload("Summarize the latest space news", history, profile, items)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}

	var decoded ChatPayload
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("payload должен быть валидным JSON: %v", err)
	}
	if decoded.UserMessage != "Summarize the latest space news" {
		t.Fatalf("сообщение пользователя должно уйти отдельным полем")
	}
	if len(decoded.ChatContext.ConversationTurns) != 2 {
		t.Fatalf("история должна попасть в payload целиком, получили %d реплик", len(decoded.ChatContext.ConversationTurns))
	}
	if len(decoded.ChatContext.RetrievedSnippets) != len(items) {
		t.Fatalf("все элементы ленты уходят в контекст без отбора")
	}
	first := decoded.ChatContext.RetrievedSnippets[0]
	if first.SourceType != "rss_item" {
		t.Fatalf("ожидали source_type rss_item, получили %q", first.SourceType)
	}
	if first.Snippet != items[0].Title+": "+items[0].Summary {
		t.Fatalf("snippet должен иметь форму <title>: <summary>")
	}
	if first.SourceID != items[0].ID {
		t.Fatalf("идентификатор источника должен сохраниться")
	}
}

func TestBuildChatPayloadRejectsEmptyMessage(t *testing.T) {
	profile, _, _, items := testInputs()
	_, err := BuildChatPayload("   ", nil, profile, items)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидали ValidationError, получили %v", err)
	}
}
