package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/hcharper/portfolio-api/internal/api/metrics"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes view events to a fixed set of workers using consistent
// hashing on the blog id, so counts for the same post are applied in order.
type Dispatcher struct {
	workers []chan ports.BlogViewInput
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.BlogViewInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.BlogViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a view event to the worker responsible for its blog id.
// The call never blocks: when a worker's buffer is full the event is
// dropped, since view counts are best-effort.
func (d *Dispatcher) Enqueue(event ports.BlogViewInput) {
	select {
	case d.workers[d.shardIndex(event.BlogID)] <- event:
	default:
		metrics.ViewsErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("blog_id", event.BlogID).Msg("view event dropped, worker buffer full")
	}
}

// shardIndex maps a blog id deterministically to a worker index.
func (d *Dispatcher) shardIndex(blogID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(blogID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.BlogViewInput) {
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
					Str("blog_id", event.BlogID).
					Int("worker_id", id).
					Msg("view processing failed")
			}
		}
	}
}
