package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/api/metrics"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes analytics events to a fixed set of workers using
// consistent hashing on the actor (or entity, for anonymous traffic),
// keeping per-actor event ordering while the request path stays
// non-blocking.
type Dispatcher struct {
	workers []chan ports.TrackEventInput
	service ports.AnalyticsService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AnalyticsService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.TrackEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.TrackEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its shard key.
// Blocks only when that worker's buffer is full.
func (d *Dispatcher) Enqueue(event ports.TrackEventInput) {
	i := d.shardIndex(shardKey(event))
	d.workers[i] <- event
	metrics.AnalyticsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardKey picks the identity the event should be ordered by.
func shardKey(event ports.TrackEventInput) string {
	if event.ActorID != "" {
		return event.ActorID
	}
	if event.EntityID != "" {
		return event.EntityID
	}
	return event.Path
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.TrackEventInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("type", event.Type).
					Int("worker_id", id).
					Msg("event processing failed")
			}
			metrics.AnalyticsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
