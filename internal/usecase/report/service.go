// Package report реализует бизнес-логику построения отчётов.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rss-briefing/internal/domain"
	"rss-briefing/internal/infra/metrics"
)

// Service строит отчёт по снимку текущего состояния и кладёт результат
// в историю. Неудачная генерация не оставляет следов в состоянии.
type Service struct {
	store   domain.StateStore
	gateway domain.ModelGateway
}

var _ domain.ReportService = (*Service)(nil)

// NewService создаёт сервис отчётов.
func NewService(store domain.StateStore, gateway domain.ModelGateway) *Service {
	return &Service{store: store, gateway: gateway}
}

// GenerateNow снимает состояние, выполняет один вызов шлюза и при успехе
// добавляет отчёт в начало истории. Любая ошибка уходит вызывающему,
// история при этом не меняется.
func (s *Service) GenerateNow(ctx context.Context) (domain.ReportRecord, error) {
	profile := s.store.Profile()
	prefs := s.store.Preferences()
	channels := s.store.Channels()
	items := s.store.Items()

	generated, err := s.gateway.GenerateReport(ctx, profile, prefs, channels, items)
	metrics.ObserveReportRequest(err)
	if err != nil {
		return domain.ReportRecord{}, err
	}

	record := domain.ReportRecord{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Report:      generated,
	}
	s.store.PrependReport(record)
	return record, nil
}
