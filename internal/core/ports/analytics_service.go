package ports

import "context"

// TrackEventInput is a raw analytics event as accepted from the HTTP surface,
// before it is assigned an ID and timestamp.
type TrackEventInput struct {
	Type     string
	ActorID  string
	EntityID string
	Path     string
}

// AnalyticsSummary aggregates event counts per type over a window.
type AnalyticsSummary struct {
	Days   int              `json:"days"`
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"by_type"`
}

// EventCounter keeps cheap daily per-type tallies alongside the durable
// event store. Failures here must not fail event processing.
type EventCounter interface {
	IncrDaily(ctx context.Context, eventType string) error
}

// AnalyticsService processes tracked events and serves admin summaries.
// Process is called from dispatcher workers, one event at a time.
type AnalyticsService interface {
	Process(ctx context.Context, input TrackEventInput) error
	Summary(ctx context.Context, days int) (*AnalyticsSummary, error)
}
