package domain

import (
	"fmt"
	"strings"
)

// Validate проверяет обязательные поля профиля.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "user_profile.name", Reason: "обязательное поле"}
	}
	if len(p.PrimaryTopics) == 0 {
		return &ValidationError{Field: "user_profile.primary_topics", Reason: "нужна хотя бы одна тема"}
	}
	return nil
}

// Validate проверяет инварианты настроек отчёта.
func (p ReportPreferences) Validate() error {
	if !p.Frequency.Valid() {
		return &ValidationError{Field: "report_preferences.frequency", Reason: fmt.Sprintf("недопустимое значение %q", p.Frequency)}
	}
	if p.MaxItems <= 0 {
		return &ValidationError{Field: "report_preferences.max_items", Reason: "должно быть больше нуля"}
	}
	if !p.StructureStyle.Valid() {
		return &ValidationError{Field: "report_preferences.structure_style", Reason: fmt.Sprintf("недопустимое значение %q", p.StructureStyle)}
	}
	if !p.Tone.Valid() {
		return &ValidationError{Field: "report_preferences.tone", Reason: fmt.Sprintf("недопустимое значение %q", p.Tone)}
	}
	return nil
}

// Validate проверяет инварианты конфигурации каналов доставки.
func (c DeliveryChannels) Validate() error {
	if !c.Email.Format.Valid() {
		return &ValidationError{Field: "delivery_channels.email.format", Reason: fmt.Sprintf("недопустимое значение %q", c.Email.Format)}
	}
	if c.SMS.Enabled && c.SMS.MaxChars <= 0 {
		return &ValidationError{Field: "delivery_channels.sms.max_chars", Reason: "должно быть больше нуля"}
	}
	if c.VideoReel.Enabled && c.VideoReel.MaxDurationSec <= 0 {
		return &ValidationError{Field: "delivery_channels.video_reel.max_duration_sec", Reason: "должно быть больше нуля"}
	}
	return nil
}

// ValidateItems проверяет, что идентификаторы элементов заданы и уникальны
// в пределах набора.
func ValidateItems(items []RSSItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return &ValidationError{Field: fmt.Sprintf("rss_items[%d].id", i), Reason: "обязательное поле"}
		}
		if _, ok := seen[item.ID]; ok {
			return &ValidationError{Field: fmt.Sprintf("rss_items[%d].id", i), Reason: fmt.Sprintf("дубликат идентификатора %q", item.ID)}
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
