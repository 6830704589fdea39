package validate

import (
	"errors"
	"testing"

	"rss-briefing/internal/domain"
)

func chatFixture() map[string]any {
	return map[string]any{
		"mode":                     "CHAT_RAG",
		"assistant_reply_markdown": "Starship reached orbit. [1]",
		"referenced_reports":       []map[string]any{},
		"referenced_sources": []map[string]any{
			{
				"source_type":   "rss_item",
				"source_id":     "1",
				"source_name":   "SpaceNews",
				"source_url":    "https://spacenews.example.com/starship-orbit",
				"justification": "Directly describes the launch.",
			},
		},
		"suggested_profile_updates": map[string]any{
			"should_update":        false,
			"new_primary_topics":   []string{},
			"new_secondary_topics": []string{},
			"notes":                "",
		},
	}
}

func TestChatAcceptsGroundedReply(t *testing.T) {
	resp, err := Chat(mustJSON(t, chatFixture()), testItems())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if resp.Mode != domain.ModeChatRAG {
		t.Fatalf("режим должен быть нормализован, получили %q", resp.Mode)
	}
	if len(resp.ReferencedSources) != 1 || resp.ReferencedSources[0].SourceID != "1" {
		t.Fatalf("цитаты должны сохраниться")
	}
}

func TestChatRejectsUngroundedRSSSource(t *testing.T) {
	fixture := chatFixture()
	fixture["referenced_sources"] = []map[string]any{
		{"source_type": "rss_item", "source_id": "777", "source_name": "Unknown", "justification": ""},
	}

	_, err := Chat(mustJSON(t, fixture), testItems())
	var ugErr *domain.UngroundedSourceError
	if !errors.As(err, &ugErr) {
		t.Fatalf("ожидали UngroundedSourceError, получили %v", err)
	}
}

func TestChatRejectsUnknownSourceType(t *testing.T) {
	fixture := chatFixture()
	fixture["referenced_sources"] = []map[string]any{
		{"source_type": "tweet", "source_id": "1", "source_name": "X", "justification": ""},
	}

	_, err := Chat(mustJSON(t, fixture), testItems())
	var svErr *domain.SchemaViolationError
	if !errors.As(err, &svErr) {
		t.Fatalf("ожидали SchemaViolationError, получили %v", err)
	}
}

func TestChatRejectsEmptyReply(t *testing.T) {
	fixture := chatFixture()
	fixture["assistant_reply_markdown"] = ""

	_, err := Chat(mustJSON(t, fixture), testItems())
	var svErr *domain.SchemaViolationError
	if !errors.As(err, &svErr) {
		t.Fatalf("ожидали SchemaViolationError, получили %v", err)
	}
}

func TestChatNormalizesMissingOptionalBlocks(t *testing.T) {
	fixture := chatFixture()
	delete(fixture, "suggested_profile_updates")
	delete(fixture, "referenced_reports")

	resp, err := Chat(mustJSON(t, fixture), testItems())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if resp.ReferencedReports == nil {
		t.Fatalf("referenced_reports нормализуется в пустой список")
	}
	if resp.SuggestedProfileUpdates.ShouldUpdate {
		t.Fatalf("отсутствующее предложение обновления — это отказ от обновления")
	}
	if resp.SuggestedProfileUpdates.NewPrimaryTopics == nil {
		t.Fatalf("списки тем нормализуются в пустые")
	}
}

func TestChatAcceptsReportCitation(t *testing.T) {
	fixture := chatFixture()
	fixture["referenced_sources"] = []map[string]any{
		{"source_type": "report", "source_id": "weekly-1", "source_name": "Weekly Brief", "justification": "Summarized there."},
	}

	resp, err := Chat(mustJSON(t, fixture), testItems())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if resp.ReferencedSources[0].SourceType != domain.SourceTypeReport {
		t.Fatalf("тип источника report должен проходить без проверки по ленте")
	}
}
