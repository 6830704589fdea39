package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"rss-briefing/internal/domain"
)

func testItems() []domain.RSSItem {
	return []domain.RSSItem{
		{ID: "1", Title: "Starship", SourceName: "SpaceNews"},
		{ID: "2", Title: "Gemini", SourceName: "TechCrunch"},
	}
}

func reportFixture() map[string]any {
	return map[string]any{
		"mode": "REPORT_GENERATION",
		"report_metadata": map[string]any{
			"title":          "Weekly Brief",
			"subtitle":       "Space and AI",
			"report_id_hint": "weekly-space-ai",
			"time_window":    map[string]any{"start": "2026-08-25T00:00:00Z", "end": "2026-09-01T00:00:00Z"},
		},
		"embedding": map[string]any{
			"embedding_summary": "Starship reached orbit; Gemini improved reasoning.",
			"embedding_tags":    []string{"space", "ai"},
		},
		"sections": []map[string]any{
			{
				"id":            "top-stories",
				"title":         "Top Stories",
				"summary":       "Two launches of note.",
				"body_markdown": "- Starship\n- Gemini",
				"important_items": []map[string]any{
					{
						"rss_item_id": "1",
						"headline":    "Starship reaches orbit",
						"key_point":   "First orbital flight.",
						"sentiment":   "positive",
						"action_item": nil,
						"source_name": "SpaceNews",
						"source_url":  "https://spacenews.example.com/starship-orbit",
					},
				},
			},
		},
		"sources": []map[string]any{
			{
				"rss_item_id":  "1",
				"source_name":  "SpaceNews",
				"source_url":   "https://spacenews.example.com/starship-orbit",
				"title":        "Starship",
				"published_at": "2026-08-31T12:00:00Z",
			},
		},
		"channels": map[string]any{
			"email":      map[string]any{"enabled": true, "subject": "Weekly Brief", "body_html": "<p>…</p>", "body_text": "…"},
			"sms":        map[string]any{"enabled": false, "summary_text": ""},
			"video_reel": map[string]any{"enabled": true, "script": "Intro…", "approx_duration_sec": 45},
		},
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("не удалось сериализовать фикстуру: %v", err)
	}
	return string(b)
}

func TestReportAcceptsGroundedOutput(t *testing.T) {
	report, err := Report(mustJSON(t, reportFixture()), testItems())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if report.Mode != domain.ModeReportGeneration {
		t.Fatalf("режим должен быть нормализован, получили %q", report.Mode)
	}
	if len(report.Sections) != 1 || len(report.Sections[0].ImportantItems) != 1 {
		t.Fatalf("секции должны сохраниться целиком")
	}
	item := report.Sections[0].ImportantItems[0]
	if item.ActionItem != "" {
		t.Fatalf("null action_item нормализуется в пустую строку, получили %q", item.ActionItem)
	}
	if item.Sentiment != domain.SentimentPositive {
		t.Fatalf("ожидали sentiment positive, получили %q", item.Sentiment)
	}
}

func TestReportRejectsUngroundedSource(t *testing.T) {
	fixture := reportFixture()
	fixture["sources"] = []map[string]any{
		{"rss_item_id": "999", "source_name": "Unknown", "source_url": "", "title": "", "published_at": ""},
	}

	_, err := Report(mustJSON(t, fixture), testItems())
	var ugErr *domain.UngroundedSourceError
	if !errors.As(err, &ugErr) {
		t.Fatalf("ожидали UngroundedSourceError, получили %v", err)
	}
	if ugErr.ID != "999" {
		t.Fatalf("ошибка должна называть неизвестный идентификатор, получили %q", ugErr.ID)
	}
}

func TestReportRejectsUngroundedImportantItem(t *testing.T) {
	fixture := reportFixture()
	sections := fixture["sections"].([]map[string]any)
	items := sections[0]["important_items"].([]map[string]any)
	items[0]["rss_item_id"] = "42"

	_, err := Report(mustJSON(t, fixture), testItems())
	var ugErr *domain.UngroundedSourceError
	if !errors.As(err, &ugErr) {
		t.Fatalf("ожидали UngroundedSourceError, получили %v", err)
	}
}

func TestReportRejectsUnknownSentiment(t *testing.T) {
	fixture := reportFixture()
	sections := fixture["sections"].([]map[string]any)
	items := sections[0]["important_items"].([]map[string]any)
	items[0]["sentiment"] = "euphoric"

	_, err := Report(mustJSON(t, fixture), testItems())
	var svErr *domain.SchemaViolationError
	if !errors.As(err, &svErr) {
		t.Fatalf("ожидали SchemaViolationError, получили %v", err)
	}
	if svErr.Value != "euphoric" {
		t.Fatalf("ошибка должна называть значение, получили %q", svErr.Value)
	}
}

func TestReportRejectsMissingMetadata(t *testing.T) {
	fixture := reportFixture()
	delete(fixture, "report_metadata")

	_, err := Report(mustJSON(t, fixture), testItems())
	var svErr *domain.SchemaViolationError
	if !errors.As(err, &svErr) {
		t.Fatalf("ожидали SchemaViolationError, получили %v", err)
	}
	if svErr.Field != "report_metadata" {
		t.Fatalf("ошибка должна называть поле, получили %q", svErr.Field)
	}
}

func TestReportRejectsMalformedJSON(t *testing.T) {
	_, err := Report("{not json", testItems())
	var svErr *domain.SchemaViolationError
	if !errors.As(err, &svErr) {
		t.Fatalf("ожидали SchemaViolationError, получили %v", err)
	}
}

func TestReportNormalizesEmptySentiment(t *testing.T) {
	fixture := reportFixture()
	sections := fixture["sections"].([]map[string]any)
	items := sections[0]["important_items"].([]map[string]any)
	items[0]["sentiment"] = ""

	report, err := Report(mustJSON(t, fixture), testItems())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if report.Sections[0].ImportantItems[0].Sentiment != domain.SentimentNone {
		t.Fatalf("пустой sentiment нормализуется в none")
	}
}
