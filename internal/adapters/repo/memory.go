// Package repo содержит хранилище состояния приложения. Хранилище живёт
// в памяти одной сессии: наполняется стартовыми значениями и исчезает при
// остановке. Персистентности нет намеренно.
package repo

import (
	"sync"

	"rss-briefing/internal/domain"
)

// Memory — единственный владелец живого состояния: профиль, настройки,
// каналы, элементы ленты и накапливающиеся истории отчётов и диалога.
// Все операции обновления — замена целиком либо вставка в список.
type Memory struct {
	mu       sync.RWMutex
	profile  domain.UserProfile
	prefs    domain.ReportPreferences
	channels domain.DeliveryChannels
	items    []domain.RSSItem
	reports  []domain.ReportRecord
	chat     []domain.ChatMessage
}

var _ domain.StateStore = (*Memory)(nil)

// NewMemory создаёт хранилище со стартовым состоянием.
func NewMemory(profile domain.UserProfile, prefs domain.ReportPreferences, channels domain.DeliveryChannels, items []domain.RSSItem) *Memory {
	return &Memory{
		profile:  profile,
		prefs:    prefs,
		channels: channels,
		items:    copyItems(items),
	}
}

// Profile возвращает копию профиля на текущий момент.
func (m *Memory) Profile() domain.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyProfile(m.profile)
}

// ReplaceProfile заменяет профиль целиком.
func (m *Memory) ReplaceProfile(profile domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = copyProfile(profile)
	return nil
}

// Preferences возвращает копию настроек отчёта.
func (m *Memory) Preferences() domain.ReportPreferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyPreferences(m.prefs)
}

// ReplacePreferences заменяет настройки отчёта целиком.
func (m *Memory) ReplacePreferences(prefs domain.ReportPreferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = copyPreferences(prefs)
	return nil
}

// Channels возвращает копию конфигурации каналов доставки.
func (m *Memory) Channels() domain.DeliveryChannels {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.channels
}

// ReplaceChannels заменяет конфигурацию каналов целиком.
func (m *Memory) ReplaceChannels(channels domain.DeliveryChannels) error {
	if err := channels.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels = channels
	return nil
}

// Items возвращает копию списка элементов ленты.
func (m *Memory) Items() []domain.RSSItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyItems(m.items)
}

// ReplaceItems заменяет список элементов ленты целиком.
func (m *Memory) ReplaceItems(items []domain.RSSItem) error {
	if err := domain.ValidateItems(items); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = copyItems(items)
	return nil
}

// Reports возвращает историю отчётов, самый свежий первым.
func (m *Memory) Reports() []domain.ReportRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ReportRecord, len(m.reports))
	copy(out, m.reports)
	return out
}

// PrependReport добавляет отчёт в начало истории. Прежние записи сохраняют
// относительный порядок.
func (m *Memory) PrependReport(record domain.ReportRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append([]domain.ReportRecord{record}, m.reports...)
}

// ChatHistory возвращает реплики диалога в хронологическом порядке.
func (m *Memory) ChatHistory() []domain.ChatMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ChatMessage, len(m.chat))
	copy(out, m.chat)
	return out
}

// AppendChatMessage добавляет реплику в конец диалога.
func (m *Memory) AppendChatMessage(msg domain.ChatMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chat = append(m.chat, msg)
}

func copyProfile(p domain.UserProfile) domain.UserProfile {
	p.PrimaryTopics = copyStrings(p.PrimaryTopics)
	p.SecondaryTopics = copyStrings(p.SecondaryTopics)
	return p
}

func copyPreferences(p domain.ReportPreferences) domain.ReportPreferences {
	p.Sections = copyStrings(p.Sections)
	return p
}

func copyItems(items []domain.RSSItem) []domain.RSSItem {
	out := make([]domain.RSSItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].CategoryTags = copyStrings(out[i].CategoryTags)
	}
	return out
}

func copyStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
