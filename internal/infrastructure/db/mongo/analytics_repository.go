package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmarket/marketplace-api/internal/core/domain"
)

const collectionAnalytics = "analytics_events"

type AnalyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(collectionAnalytics)}
}

type analyticsDoc struct {
	ID         string    `bson:"_id"`
	Type       string    `bson:"type"`
	ActorID    string    `bson:"actor_id,omitempty"`
	EntityID   string    `bson:"entity_id,omitempty"`
	Path       string    `bson:"path,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *AnalyticsRepository) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := analyticsDoc{
		ID:         event.ID,
		Type:       event.Type,
		ActorID:    event.ActorID,
		EntityID:   event.EntityID,
		Path:       event.Path,
		OccurredAt: event.OccurredAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// CountByTypeSince aggregates event counts per type for events at or after
// the given instant.
func (r *AnalyticsRepository) CountByTypeSince(ctx context.Context, since time.Time) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"occurred_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Type  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode event count: %w", err)
		}
		counts[row.Type] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate event counts: %w", err)
	}
	return counts, nil
}

// EnsureIndexes creates the analytics collection indexes.
func (r *AnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurred_at", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "occurred_at", Value: 1}}},
	})
	return err
}
