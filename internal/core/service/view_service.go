package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hcharper/portfolio-api/internal/api/metrics"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

// ViewCounter abstracts the per-blog view counter store (Redis).
type ViewCounter interface {
	Incr(ctx context.Context, blogID string) (int64, error)
	Get(ctx context.Context, blogID string) (int64, error)
}

type viewService struct {
	blogRepo ports.BlogRepository
	counter  ViewCounter
	log      zerolog.Logger
}

// NewViewService returns a ViewService implementation.
func NewViewService(blogRepo ports.BlogRepository, counter ViewCounter, log zerolog.Logger) ports.ViewService {
	return &viewService{blogRepo: blogRepo, counter: counter, log: log}
}

// Process records a single view: verify the post still exists, then bump
// its counter. Counts are best-effort, so failures are logged and counted
// but never retried.
func (s *viewService) Process(ctx context.Context, in ports.BlogViewInput) error {
	if _, err := s.blogRepo.FindByID(ctx, in.BlogID); err != nil {
		metrics.ViewsErrorsTotal.WithLabelValues("blog_not_found").Inc()
		return fmt.Errorf("process view: %w", err)
	}

	total, err := s.counter.Incr(ctx, in.BlogID)
	if err != nil {
		metrics.ViewsErrorsTotal.WithLabelValues("counter_incr").Inc()
		return fmt.Errorf("process view: incr: %w", err)
	}

	metrics.ViewsProcessedTotal.Inc()
	s.log.Debug().Str("blog_id", in.BlogID).Int64("total", total).Msg("view recorded")
	return nil
}

// Count returns the current view total for a blog.
func (s *viewService) Count(ctx context.Context, blogID string) (int64, error) {
	return s.counter.Get(ctx, blogID)
}
