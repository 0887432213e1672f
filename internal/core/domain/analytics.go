package domain

import "time"

// Analytics event types tracked by the marketplace.
const (
	EventPageView    = "page_view"
	EventProductView = "product_view"
	EventVendorView  = "vendor_view"
	EventSearch      = "search"
)

// ValidEventType reports whether t names a known analytics event type.
func ValidEventType(t string) bool {
	switch t {
	case EventPageView, EventProductView, EventVendorView, EventSearch:
		return true
	}
	return false
}

// AnalyticsEvent records a single tracked interaction. ActorID is empty for
// anonymous traffic; EntityID references the viewed product/vendor when the
// type calls for one.
type AnalyticsEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ActorID    string    `json:"actor_id,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
