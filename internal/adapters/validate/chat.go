package validate

import (
	"encoding/json"
	"fmt"

	"rss-briefing/internal/domain"
)

type rawChatResponse struct {
	Mode                    string                          `json:"mode"`
	AssistantReplyMarkdown  string                          `json:"assistant_reply_markdown"`
	ReferencedReports       []domain.ReferencedReport       `json:"referenced_reports"`
	ReferencedSources       []rawReferencedSource           `json:"referenced_sources"`
	SuggestedProfileUpdates *domain.SuggestedProfileUpdates `json:"suggested_profile_updates"`
}

type rawReferencedSource struct {
	SourceType    string `json:"source_type"`
	SourceID      string `json:"source_id"`
	SourceName    string `json:"source_name"`
	SourceURL     string `json:"source_url"`
	Justification string `json:"justification"`
}

// Chat разбирает ответ режима CHAT_RAG. Каждая ссылка на элемент ленты
// обязана указывать на идентификатор из исходного запроса.
func Chat(raw string, items []domain.RSSItem) (domain.ChatResponse, error) {
	var parsed rawChatResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.ChatResponse{}, &domain.SchemaViolationError{Field: "$", Value: clip(raw, 120)}
	}
	if parsed.Mode != "" && parsed.Mode != domain.ModeChatRAG {
		return domain.ChatResponse{}, &domain.SchemaViolationError{Field: "mode", Value: parsed.Mode}
	}
	if parsed.AssistantReplyMarkdown == "" {
		return domain.ChatResponse{}, &domain.SchemaViolationError{Field: "assistant_reply_markdown", Value: "отсутствует"}
	}

	known := itemIDSet(items)

	sources := make([]domain.ReferencedSource, 0, len(parsed.ReferencedSources))
	for i, src := range parsed.ReferencedSources {
		path := fmt.Sprintf("referenced_sources[%d]", i)
		sourceType := domain.SourceType(src.SourceType)
		if !sourceType.Valid() {
			return domain.ChatResponse{}, &domain.SchemaViolationError{Field: path + ".source_type", Value: src.SourceType}
		}
		if sourceType == domain.SourceTypeRSSItem {
			if _, ok := known[src.SourceID]; !ok {
				return domain.ChatResponse{}, &domain.UngroundedSourceError{Field: path + ".source_id", ID: src.SourceID}
			}
		}
		sources = append(sources, domain.ReferencedSource{
			SourceType:    sourceType,
			SourceID:      src.SourceID,
			SourceName:    src.SourceName,
			SourceURL:     src.SourceURL,
			Justification: src.Justification,
		})
	}

	updates := domain.SuggestedProfileUpdates{
		NewPrimaryTopics:   []string{},
		NewSecondaryTopics: []string{},
	}
	if parsed.SuggestedProfileUpdates != nil {
		updates = *parsed.SuggestedProfileUpdates
		if updates.NewPrimaryTopics == nil {
			updates.NewPrimaryTopics = []string{}
		}
		if updates.NewSecondaryTopics == nil {
			updates.NewSecondaryTopics = []string{}
		}
	}

	reports := parsed.ReferencedReports
	if reports == nil {
		reports = []domain.ReferencedReport{}
	}

	return domain.ChatResponse{
		Mode:                    domain.ModeChatRAG,
		AssistantReplyMarkdown:  parsed.AssistantReplyMarkdown,
		ReferencedReports:       reports,
		ReferencedSources:       sources,
		SuggestedProfileUpdates: updates,
	}, nil
}
