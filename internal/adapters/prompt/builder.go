// Package prompt собирает структурированные payload для генеративной модели.
// Сборщик — чистая функция своих аргументов: никакого I/O, единственная
// ошибка — ValidationError на некорректном входе до любого сетевого вызова.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"rss-briefing/internal/domain"
)

// ReportPayload — тело запроса в режиме генерации отчёта.
type ReportPayload struct {
	UserProfile       domain.UserProfile       `json:"user_profile"`
	ReportPreferences domain.ReportPreferences `json:"report_preferences"`
	DeliveryChannels  domain.DeliveryChannels  `json:"delivery_channels"`
	RSSItems          []domain.RSSItem         `json:"rss_items"`
	HistoryContext    HistoryContext           `json:"history_context"`
}

// HistoryContext передаёт модели недавние отчёты. Пока всегда пустой:
// межотчётной памяти в этой версии нет, это упрощение, а не гарантия.
type HistoryContext struct {
	RecentReports []domain.ReferencedReport `json:"recent_reports"`
}

// ChatPayload — тело запроса в режиме диалога.
type ChatPayload struct {
	UserProfile domain.UserProfile `json:"user_profile"`
	ChatContext ChatContext        `json:"chat_context"`
	UserMessage string             `json:"user_message"`
}

// ChatContext несёт историю диалога и контекстные фрагменты.
type ChatContext struct {
	ConversationTurns []ConversationTurn        `json:"conversation_turns"`
	ReferencedReports []domain.ReferencedReport `json:"referenced_reports"`
	RetrievedSnippets []Snippet                 `json:"retrieved_snippets"`
}

// ConversationTurn — одна реплика истории без служебных полей.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Snippet — проекция элемента ленты в контекст диалога.
type Snippet struct {
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
	Snippet    string `json:"snippet"`
	SourceURL  string `json:"source_url"`
}

// BuildReportPayload собирает payload генерации отчёта.
func BuildReportPayload(profile domain.UserProfile, prefs domain.ReportPreferences, channels domain.DeliveryChannels, items []domain.RSSItem) ([]byte, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	if err := channels.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}
	payload := ReportPayload{
		UserProfile:       profile,
		ReportPreferences: prefs,
		DeliveryChannels:  channels,
		RSSItems:          items,
		HistoryContext:    HistoryContext{RecentReports: []domain.ReferencedReport{}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("сериализация payload отчёта: %w", err)
	}
	return body, nil
}

// BuildChatPayload собирает payload диалога. История — реплики до текущего
// сообщения; само сообщение передаётся отдельным полем. Все доступные
// элементы ленты попадают в retrieved_snippets без ранжирования и отбора.
func BuildChatPayload(query string, history []domain.ChatMessage, profile domain.UserProfile, items []domain.RSSItem) ([]byte, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Field: "user_message", Reason: "пустое сообщение"}
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}

	turns := make([]ConversationTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, ConversationTurn{Role: msg.Role, Content: msg.Content})
	}
	snippets := make([]Snippet, 0, len(items))
	for _, item := range items {
		snippets = append(snippets, Snippet{
			SourceType: string(domain.SourceTypeRSSItem),
			SourceID:   item.ID,
			Snippet:    item.Title + ": " + item.Summary,
			SourceURL:  item.SourceURL,
		})
	}
	payload := ChatPayload{
		UserProfile: profile,
		ChatContext: ChatContext{
			ConversationTurns: turns,
			ReferencedReports: []domain.ReferencedReport{},
			RetrievedSnippets: snippets,
		},
		UserMessage: query,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("сериализация payload диалога: %w", err)
	}
	return body, nil
}
