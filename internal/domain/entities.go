package domain

import "time"

// Frequency задаёт периодичность отчётов.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// StructureStyle задаёт структуру отчёта.
type StructureStyle string

const (
	StyleBulletSummary  StructureStyle = "bullet_summary"
	StyleNarrative      StructureStyle = "narrative"
	StyleExecutiveBrief StructureStyle = "executive_brief"
	StyleDeepDive       StructureStyle = "deep_dive"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (s StructureStyle) Valid() bool {
	switch s {
	case StyleBulletSummary, StyleNarrative, StyleExecutiveBrief, StyleDeepDive:
		return true
	}
	return false
}

// Tone задаёт тональность отчёта.
type Tone string

const (
	ToneConcise     Tone = "concise"
	ToneAnalytic    Tone = "analytic"
	ToneOpinionated Tone = "opinionated"
	ToneNeutral     Tone = "neutral"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (t Tone) Valid() bool {
	switch t {
	case ToneConcise, ToneAnalytic, ToneOpinionated, ToneNeutral:
		return true
	}
	return false
}

// Sentiment задаёт оценку тональности новости.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
	SentimentNone     Sentiment = "none"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed, SentimentNone:
		return true
	}
	return false
}

// EmailFormat задаёт формат письма.
type EmailFormat string

const (
	EmailFormatHTML      EmailFormat = "html"
	EmailFormatPlaintext EmailFormat = "plaintext"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (f EmailFormat) Valid() bool {
	return f == EmailFormatHTML || f == EmailFormatPlaintext
}

// SourceType различает источники цитирования в ответе ассистента.
type SourceType string

const (
	SourceTypeReport  SourceType = "report"
	SourceTypeRSSItem SourceType = "rss_item"
)

// Valid проверяет, что значение входит в закрытый перечень.
func (s SourceType) Valid() bool {
	return s == SourceTypeReport || s == SourceTypeRSSItem
}

// Роли сообщений в диалоге.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Теги режимов работы модели.
const (
	ModeReportGeneration = "REPORT_GENERATION"
	ModeChatRAG          = "CHAT_RAG"
)

// UserProfile описывает профиль пользователя.
type UserProfile struct {
	Name            string   `json:"name"`
	PrimaryTopics   []string `json:"primary_topics"`
	SecondaryTopics []string `json:"secondary_topics"`
	TimeZone        string   `json:"time_zone"`
	Language        string   `json:"language"`
}

// ReportPreferences описывает настройки генерации отчётов.
type ReportPreferences struct {
	Frequency          Frequency      `json:"frequency"`
	MaxItems           int            `json:"max_items"`
	StructureStyle     StructureStyle `json:"structure_style"`
	Sections           []string       `json:"sections"`
	Tone               Tone           `json:"tone"`
	IncludeSentiment   bool           `json:"include_sentiment"`
	IncludeActionItems bool           `json:"include_action_items"`
}

// EmailChannel описывает канал доставки по почте.
type EmailChannel struct {
	Enabled bool        `json:"enabled"`
	Format  EmailFormat `json:"format"`
}

// SMSChannel описывает канал доставки по SMS.
type SMSChannel struct {
	Enabled  bool `json:"enabled"`
	MaxChars int  `json:"max_chars"`
}

// VideoReelChannel описывает канал доставки видео-роликом.
type VideoReelChannel struct {
	Enabled        bool `json:"enabled"`
	MaxDurationSec int  `json:"max_duration_sec"`
}

// DeliveryChannels описывает конфигурацию каналов доставки отчёта.
type DeliveryChannels struct {
	Email     EmailChannel     `json:"email"`
	SMS       SMSChannel       `json:"sms"`
	VideoReel VideoReelChannel `json:"video_reel"`
}

// RSSItem представляет один элемент ленты.
type RSSItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Content      string   `json:"content,omitempty"`
	PublishedAt  string   `json:"published_at"`
	SourceName   string   `json:"source_name"`
	SourceURL    string   `json:"source_url"`
	CategoryTags []string `json:"category_tags"`
}

// ImportantItem описывает ключевую новость внутри секции отчёта.
type ImportantItem struct {
	RSSItemID  string    `json:"rss_item_id"`
	Headline   string    `json:"headline"`
	KeyPoint   string    `json:"key_point"`
	Sentiment  Sentiment `json:"sentiment"`
	ActionItem string    `json:"action_item,omitempty"`
	SourceName string    `json:"source_name"`
	SourceURL  string    `json:"source_url"`
}

// ReportSection описывает секцию отчёта.
type ReportSection struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary"`
	BodyMarkdown   string          `json:"body_markdown"`
	ImportantItems []ImportantItem `json:"important_items"`
}

// ReportSource фиксирует происхождение материала отчёта.
type ReportSource struct {
	RSSItemID   string `json:"rss_item_id"`
	SourceName  string `json:"source_name"`
	SourceURL   string `json:"source_url"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
}

// TimeWindow задаёт период, который покрывает отчёт.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportMetadata содержит заголовочные данные отчёта.
type ReportMetadata struct {
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	ReportIDHint string     `json:"report_id_hint"`
	TimeWindow   TimeWindow `json:"time_window"`
}

// ReportEmbedding содержит краткую выжимку отчёта для последующего поиска.
type ReportEmbedding struct {
	EmbeddingSummary string   `json:"embedding_summary"`
	EmbeddingTags    []string `json:"embedding_tags"`
}

// EmailPreview содержит готовое письмо.
type EmailPreview struct {
	Enabled  bool   `json:"enabled"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text"`
}

// SMSPreview содержит готовый текст SMS.
type SMSPreview struct {
	Enabled     bool   `json:"enabled"`
	SummaryText string `json:"summary_text"`
}

// VideoReelPreview содержит сценарий видео-ролика.
type VideoReelPreview struct {
	Enabled           bool   `json:"enabled"`
	Script            string `json:"script"`
	ApproxDurationSec int    `json:"approx_duration_sec"`
}

// ChannelPreviews содержит представления отчёта по каналам доставки.
type ChannelPreviews struct {
	Email     EmailPreview     `json:"email"`
	SMS       SMSPreview       `json:"sms"`
	VideoReel VideoReelPreview `json:"video_reel"`
}

// GeneratedReport представляет собой итоговый структурированный отчёт.
type GeneratedReport struct {
	Mode      string          `json:"mode"`
	Metadata  ReportMetadata  `json:"report_metadata"`
	Embedding ReportEmbedding `json:"embedding"`
	Sections  []ReportSection `json:"sections"`
	Sources   []ReportSource  `json:"sources"`
	Channels  ChannelPreviews `json:"channels"`
}

// ReportRecord оборачивает отчёт в истории вместе с учётными данными.
type ReportRecord struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Report      GeneratedReport `json:"report"`
}

// ReferencedReport указывает на отчёт, процитированный ассистентом.
type ReferencedReport struct {
	ReportID  string `json:"report_id"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

// ReferencedSource указывает на источник, процитированный ассистентом.
type ReferencedSource struct {
	SourceType    SourceType `json:"source_type"`
	SourceID      string     `json:"source_id"`
	SourceName    string     `json:"source_name"`
	SourceURL     string     `json:"source_url,omitempty"`
	Justification string     `json:"justification"`
}

// SuggestedProfileUpdates содержит предложение модели обновить профиль.
// Ядро только показывает предложение и никогда не применяет его само.
type SuggestedProfileUpdates struct {
	ShouldUpdate       bool     `json:"should_update"`
	NewPrimaryTopics   []string `json:"new_primary_topics"`
	NewSecondaryTopics []string `json:"new_secondary_topics"`
	Notes              string   `json:"notes"`
}

// ChatMessage представляет одну реплику диалога.
type ChatMessage struct {
	ID                string             `json:"id"`
	Role              string             `json:"role"`
	Content           string             `json:"content"`
	Timestamp         time.Time          `json:"timestamp"`
	ReferencedReports []ReferencedReport `json:"referenced_reports,omitempty"`
	ReferencedSources []ReferencedSource `json:"referenced_sources,omitempty"`
}

// ChatTurn — итог одного хода диалога: записанная реплика ассистента и
// полный ответ модели, включая предложение обновить профиль.
type ChatTurn struct {
	Message  ChatMessage  `json:"message"`
	Response ChatResponse `json:"response"`
}

// ChatResponse представляет один ответ ассистента на реплику пользователя.
type ChatResponse struct {
	Mode                    string                  `json:"mode"`
	AssistantReplyMarkdown  string                  `json:"assistant_reply_markdown"`
	ReferencedReports       []ReferencedReport      `json:"referenced_reports"`
	ReferencedSources       []ReferencedSource      `json:"referenced_sources"`
	SuggestedProfileUpdates SuggestedProfileUpdates `json:"suggested_profile_updates"`
}
