package domain

import "context"

// ModelGateway выполняет ровно один синхронный вызов генеративной модели
// за обращение. Повторов и восстановления после сбоев нет: любая ошибка
// уходит вызывающему без изменений.
type ModelGateway interface {
	GenerateReport(ctx context.Context, profile UserProfile, prefs ReportPreferences, channels DeliveryChannels, items []RSSItem) (GeneratedReport, error)
	Chat(ctx context.Context, query string, history []ChatMessage, profile UserProfile, items []RSSItem) (ChatResponse, error)
}

// FeedSource поставляет материализованный список элементов ленты.
// Сбор и обновление лент — забота внешнего коллектора.
type FeedSource interface {
	Items() []RSSItem
}

// StateStore владеет живым состоянием приложения. Шлюз и валидатор
// работают только с копиями на момент запроса.
type StateStore interface {
	Profile() UserProfile
	ReplaceProfile(profile UserProfile) error
	Preferences() ReportPreferences
	ReplacePreferences(prefs ReportPreferences) error
	Channels() DeliveryChannels
	ReplaceChannels(channels DeliveryChannels) error
	Items() []RSSItem
	ReplaceItems(items []RSSItem) error
	Reports() []ReportRecord
	PrependReport(record ReportRecord)
	ChatHistory() []ChatMessage
	AppendChatMessage(msg ChatMessage)
}

// ReportService строит отчёты по текущему состоянию.
type ReportService interface {
	GenerateNow(ctx context.Context) (ReportRecord, error)
}

// AssistantService ведёт диалог с пользователем поверх текущего состояния.
type AssistantService interface {
	Send(ctx context.Context, text string) (ChatTurn, error)
}
