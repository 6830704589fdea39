// Package feed подставляет статичный список элементов ленты вместо внешнего
// коллектора. Сбор и обновление реальных RSS-лент — вне ядра.
package feed

import (
	"time"

	"rss-briefing/internal/domain"
)

// Static реализует источник ленты фиксированным набором элементов.
type Static struct {
	items []domain.RSSItem
}

var _ domain.FeedSource = (*Static)(nil)

// NewStatic создаёт источник с набором по умолчанию.
func NewStatic() *Static {
	return &Static{items: SeedItems(time.Now())}
}

// Items возвращает материализованный список элементов.
func (s *Static) Items() []domain.RSSItem {
	out := make([]domain.RSSItem, len(s.items))
	copy(out, s.items)
	return out
}

// SeedItems возвращает стартовый набор элементов ленты с отметками времени
// относительно now.
func SeedItems(now time.Time) []domain.RSSItem {
	at := func(age time.Duration) string {
		return now.Add(-age).UTC().Format(time.RFC3339)
	}
	return []domain.RSSItem{
		{
			ID:           "1",
			Title:        "SpaceX Starship Successfully Reaches Orbit",
			Summary:      "The massive rocket achieved orbital velocity for the first time, marking a major milestone for interplanetary travel.",
			PublishedAt:  at(2 * time.Hour),
			SourceName:   "SpaceNews",
			SourceURL:    "https://spacenews.example.com/starship-orbit",
			CategoryTags: []string{"Space", "Tech"},
		},
		{
			ID:           "2",
			Title:        "New AI Model 'Gemini' Shows Advanced Reasoning",
			Summary:      "Google's latest multimodal model outperforms benchmarks in code generation and complex reasoning tasks.",
			PublishedAt:  at(5 * time.Hour),
			SourceName:   "TechCrunch",
			SourceURL:    "https://techcrunch.example.com/gemini-launch",
			CategoryTags: []string{"AI", "Machine Learning"},
		},
		{
			ID:           "3",
			Title:        "Global Temperatures Hit Record High in 2024",
			Summary:      "Climate scientists warn that 2024 has surpassed previous records, urging immediate policy action.",
			PublishedAt:  at(24 * time.Hour),
			SourceName:   "ClimateDaily",
			SourceURL:    "https://climatedaily.example.com/2024-records",
			CategoryTags: []string{"Climate", "Environment"},
		},
		{
			ID:           "4",
			Title:        "React 19 Alpha Released: What to Expect",
			Summary:      "The new compiler is the star of the show, promising automatic memoization and performance boosts.",
			PublishedAt:  at(48 * time.Hour),
			SourceName:   "ReactBlog",
			SourceURL:    "https://react.dev/blog/19-alpha",
			CategoryTags: []string{"Dev", "React"},
		},
		{
			ID:           "5",
			Title:        "VC Funding for Climate Tech Startups Soars",
			Summary:      "Despite a general market downturn, climate tech remains a hot sector for venture capital investment.",
			PublishedAt:  at(72 * time.Hour),
			SourceName:   "VentureBeat",
			SourceURL:    "https://venturebeat.example.com/climate-vc",
			CategoryTags: []string{"VC", "Climate"},
		},
	}
}

// SeedProfile возвращает профиль по умолчанию.
func SeedProfile() domain.UserProfile {
	return domain.UserProfile{
		Name:            "Alex Researcher",
		PrimaryTopics:   []string{"Artificial Intelligence", "Space Exploration", "Climate Tech"},
		SecondaryTopics: []string{"Venture Capital", "React Development"},
		TimeZone:        "America/New_York",
		Language:        "en-US",
	}
}

// SeedPreferences возвращает настройки отчёта по умолчанию.
func SeedPreferences() domain.ReportPreferences {
	return domain.ReportPreferences{
		Frequency:          domain.FrequencyWeekly,
		MaxItems:           10,
		StructureStyle:     domain.StyleExecutiveBrief,
		Sections:           []string{"Top Stories", "Market Analysis", "Emerging Tech"},
		Tone:               domain.ToneAnalytic,
		IncludeSentiment:   true,
		IncludeActionItems: true,
	}
}

// SeedChannels возвращает конфигурацию каналов доставки по умолчанию.
func SeedChannels() domain.DeliveryChannels {
	return domain.DeliveryChannels{
		Email:     domain.EmailChannel{Enabled: true, Format: domain.EmailFormatHTML},
		SMS:       domain.SMSChannel{Enabled: false, MaxChars: 160},
		VideoReel: domain.VideoReelChannel{Enabled: true, MaxDurationSec: 60},
	}
}
