package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	TZ     string `envconfig:"TZ" default:"UTC"`
	Port   int    `envconfig:"PORT" default:"8080"`

	Gemini struct {
		APIKey  string        `envconfig:"GEMINI_API_KEY"`
		Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`
		Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"120s"`
	} `envconfig:""`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
