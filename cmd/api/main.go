package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"rss-briefing/internal/adapters/feed"
	"rss-briefing/internal/adapters/gateway"
	"rss-briefing/internal/adapters/repo"
	"rss-briefing/internal/domain"
	"rss-briefing/internal/infra/config"
	"rss-briefing/internal/infra/gemini"
	httpinfra "rss-briefing/internal/infra/http"
	loginfra "rss-briefing/internal/infra/log"
	"rss-briefing/internal/infra/metrics"
	assistantusecase "rss-briefing/internal/usecase/assistant"
	reportusecase "rss-briefing/internal/usecase/report"
)

const httpShutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := loginfra.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.StartServer(ctx, loginfra.Component(logger, "metrics"), cfg.MetricsAddr)

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("api: не удалось создать клиента Gemini")
	}

	source := feed.NewStatic()
	store := repo.NewMemory(feed.SeedProfile(), feed.SeedPreferences(), feed.SeedChannels(), source.Items())
	modelGateway := gateway.NewGemini(geminiClient)
	reports := reportusecase.NewService(store, modelGateway)
	assistant := assistantusecase.NewService(store, modelGateway)

	server := httpinfra.NewServer(loginfra.Component(logger, "http"))
	registerRoutes(server, logger, store, reports, assistant)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("api: graceful shutdown failed")
		}
	}()

	if err := server.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("api: сервер остановился с ошибкой")
	}
}

func registerRoutes(server *httpinfra.Server, logger zerolog.Logger, store domain.StateStore, reports domain.ReportService, assistant domain.AssistantService) {
	r := server.Router

	r.Get("/api/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.Profile())
	})

	r.Put("/api/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var profile domain.UserProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := store.ReplaceProfile(profile); err != nil {
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusOK, store.Profile())
	})

	r.Get("/api/v1/preferences", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.Preferences())
	})

	r.Put("/api/v1/preferences", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var prefs domain.ReportPreferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := store.ReplacePreferences(prefs); err != nil {
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusOK, store.Preferences())
	})

	r.Get("/api/v1/channels", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.Channels())
	})

	r.Put("/api/v1/channels", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var channels domain.DeliveryChannels
		if err := json.NewDecoder(r.Body).Decode(&channels); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := store.ReplaceChannels(channels); err != nil {
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusOK, store.Channels())
	})

	r.Get("/api/v1/feed/items", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.Items())
	})

	r.Put("/api/v1/feed/items", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var items []domain.RSSItem
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if err := store.ReplaceItems(items); err != nil {
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusOK, store.Items())
	})

	r.Get("/api/v1/reports", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.Reports())
	})

	r.Post("/api/v1/reports/generate", func(w http.ResponseWriter, r *http.Request) {
		record, err := reports.GenerateNow(r.Context())
		if err != nil {
			logger.Error().Err(err).Msg("api: генерация отчёта не удалась")
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusCreated, record)
	})

	r.Get("/api/v1/chat/history", func(w http.ResponseWriter, r *http.Request) {
		httpinfra.WriteJSON(w, http.StatusOK, store.ChatHistory())
	})

	r.Post("/api/v1/chat/messages", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			httpinfra.WriteError(w, http.StatusBadRequest, "bad_request", "message is required")
			return
		}
		turn, err := assistant.Send(r.Context(), req.Message)
		if err != nil {
			logger.Error().Err(err).Msg("api: ход диалога не удался")
			writeDomainError(w, err)
			return
		}
		httpinfra.WriteJSON(w, http.StatusCreated, turn)
	})
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// writeDomainError переводит ошибки ядра в HTTP статусы: ошибки входа и
// отклонённые ответы модели — 422, сбои внешнего сервиса — 502.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		schemaErr     *domain.SchemaViolationError
		ungroundedErr *domain.UngroundedSourceError
		transportErr  *domain.TransportError
		emptyErr      *domain.EmptyResponseError
	)
	switch {
	case errors.As(err, &validationErr):
		httpinfra.WriteError(w, http.StatusUnprocessableEntity, "validation_error", validationErr.Error())
	case errors.As(err, &schemaErr):
		httpinfra.WriteError(w, http.StatusUnprocessableEntity, "schema_violation", schemaErr.Error())
	case errors.As(err, &ungroundedErr):
		httpinfra.WriteError(w, http.StatusUnprocessableEntity, "ungrounded_source", ungroundedErr.Error())
	case errors.As(err, &transportErr):
		httpinfra.WriteError(w, http.StatusBadGateway, "transport_error", transportErr.Error())
	case errors.As(err, &emptyErr):
		httpinfra.WriteError(w, http.StatusBadGateway, "empty_response", emptyErr.Error())
	default:
		httpinfra.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
