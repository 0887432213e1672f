package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/api/metrics"
	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// AnalyticsService persists tracked events and serves admin summaries.
// Process runs on dispatcher workers, not on the request path.
type AnalyticsService struct {
	repo    ports.AnalyticsRepository
	counter ports.EventCounter
	logger  zerolog.Logger
}

// NewAnalyticsService builds the service. counter may be nil when no Redis
// tally is wanted.
func NewAnalyticsService(repo ports.AnalyticsRepository, counter ports.EventCounter, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, counter: counter, logger: logger}
}

// Process validates, stamps, and stores one event.
func (s *AnalyticsService) Process(ctx context.Context, input ports.TrackEventInput) error {
	if !domain.ValidEventType(input.Type) {
		metrics.AnalyticsErrorsTotal.WithLabelValues("invalid_type").Inc()
		return domain.ErrInvalidInput
	}

	event := &domain.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       input.Type,
		ActorID:    input.ActorID,
		EntityID:   input.EntityID,
		Path:       input.Path,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AnalyticsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return err
	}

	if s.counter != nil {
		if err := s.counter.IncrDaily(ctx, event.Type); err != nil {
			// The durable write succeeded; a lost tally is tolerable.
			s.logger.Warn().Err(err).Str("type", event.Type).Msg("daily counter increment failed")
		}
	}

	metrics.AnalyticsEventsTotal.WithLabelValues(event.Type).Inc()
	return nil
}

// Summary aggregates event counts per type over the last days*24h.
func (s *AnalyticsService) Summary(ctx context.Context, days int) (*ports.AnalyticsSummary, error) {
	if days < 1 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	byType, err := s.repo.CountByTypeSince(ctx, since)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byType {
		total += n
	}
	return &ports.AnalyticsSummary{Days: days, Total: total, ByType: byType}, nil
}
