// Package validate разбирает сырой структурированный ответ модели в доменные
// типы и проверяет его инварианты. Отчёт или ответ принимается целиком либо
// отклоняется целиком: частично принятых объектов не бывает.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"rss-briefing/internal/domain"
)

type rawReport struct {
	Mode      string                  `json:"mode"`
	Metadata  *domain.ReportMetadata  `json:"report_metadata"`
	Embedding *domain.ReportEmbedding `json:"embedding"`
	Sections  []rawSection            `json:"sections"`
	Sources   []domain.ReportSource   `json:"sources"`
	Channels  *domain.ChannelPreviews `json:"channels"`
}

type rawSection struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Summary        string             `json:"summary"`
	BodyMarkdown   string             `json:"body_markdown"`
	ImportantItems []rawImportantItem `json:"important_items"`
}

type rawImportantItem struct {
	RSSItemID  string `json:"rss_item_id"`
	Headline   string `json:"headline"`
	KeyPoint   string `json:"key_point"`
	Sentiment  string `json:"sentiment"`
	ActionItem string `json:"action_item"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
}

// Report разбирает ответ режима REPORT_GENERATION. Каждый rss_item_id в
// секциях и источниках обязан присутствовать в наборе элементов исходного
// запроса, иначе отчёт отклоняется с UngroundedSourceError.
func Report(raw string, items []domain.RSSItem) (domain.GeneratedReport, error) {
	var parsed rawReport
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: "$", Value: clip(raw, 120)}
	}
	if parsed.Mode != "" && parsed.Mode != domain.ModeReportGeneration {
		return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: "mode", Value: parsed.Mode}
	}
	if parsed.Metadata == nil {
		return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: "report_metadata", Value: "отсутствует"}
	}
	if parsed.Embedding == nil {
		return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: "embedding", Value: "отсутствует"}
	}
	if parsed.Channels == nil {
		return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: "channels", Value: "отсутствует"}
	}

	known := itemIDSet(items)

	sections := make([]domain.ReportSection, 0, len(parsed.Sections))
	for si, sec := range parsed.Sections {
		outItems := make([]domain.ImportantItem, 0, len(sec.ImportantItems))
		for ii, item := range sec.ImportantItems {
			path := fmt.Sprintf("sections[%d].important_items[%d]", si, ii)
			if _, ok := known[item.RSSItemID]; !ok {
				return domain.GeneratedReport{}, &domain.UngroundedSourceError{Field: path + ".rss_item_id", ID: item.RSSItemID}
			}
			sentiment := domain.Sentiment(item.Sentiment)
			if item.Sentiment == "" {
				sentiment = domain.SentimentNone
			}
			if !sentiment.Valid() {
				return domain.GeneratedReport{}, &domain.SchemaViolationError{Field: path + ".sentiment", Value: item.Sentiment}
			}
			outItems = append(outItems, domain.ImportantItem{
				RSSItemID:  item.RSSItemID,
				Headline:   strings.TrimSpace(item.Headline),
				KeyPoint:   strings.TrimSpace(item.KeyPoint),
				Sentiment:  sentiment,
				ActionItem: strings.TrimSpace(item.ActionItem),
				SourceName: item.SourceName,
				SourceURL:  item.SourceURL,
			})
		}
		sections = append(sections, domain.ReportSection{
			ID:             sec.ID,
			Title:          sec.Title,
			Summary:        sec.Summary,
			BodyMarkdown:   sec.BodyMarkdown,
			ImportantItems: outItems,
		})
	}

	if parsed.Sources == nil {
		parsed.Sources = []domain.ReportSource{}
	}
	for i, src := range parsed.Sources {
		if _, ok := known[src.RSSItemID]; !ok {
			return domain.GeneratedReport{}, &domain.UngroundedSourceError{Field: fmt.Sprintf("sources[%d].rss_item_id", i), ID: src.RSSItemID}
		}
	}

	return domain.GeneratedReport{
		Mode:      domain.ModeReportGeneration,
		Metadata:  *parsed.Metadata,
		Embedding: normalizeEmbedding(*parsed.Embedding),
		Sections:  sections,
		Sources:   parsed.Sources,
		Channels:  *parsed.Channels,
	}, nil
}

func normalizeEmbedding(e domain.ReportEmbedding) domain.ReportEmbedding {
	if e.EmbeddingTags == nil {
		e.EmbeddingTags = []string{}
	}
	return e
}

func itemIDSet(items []domain.RSSItem) map[string]struct{} {
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	return known
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
