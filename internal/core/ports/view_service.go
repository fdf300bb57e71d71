package ports

import (
	"context"
	"time"
)

// BlogViewInput is a single page-view event for a blog post.
type BlogViewInput struct {
	BlogID    string
	Timestamp time.Time
}

// ViewService processes view events and answers count queries. Processing
// is best-effort: views are recorded asynchronously and a dropped event is
// acceptable.
type ViewService interface {
	Process(ctx context.Context, in BlogViewInput) error
	Count(ctx context.Context, blogID string) (int64, error)
}
