package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// Caller identifies the authenticated actor behind a request, as decoded
// from its bearer token.
type Caller struct {
	UserID string
	Role   string
}

// CreateBlogInput carries a new post. OwnerID is always set from the
// caller's token, never from the request body.
type CreateBlogInput struct {
	Title          string
	Snippet        string
	Body           string
	Content        string
	OwnerID        string
	LinkedProjects []string
	TwitterEmbeds  []string
}

// UpdateBlogInput carries optional field updates; nil means unchanged.
type UpdateBlogInput struct {
	Title          *string
	Snippet        *string
	Body           *string
	Content        *string
	LinkedProjects []string
	TwitterEmbeds  []string
}

// BlogService defines blog use cases. Update and Delete enforce the
// ownership rule (owner or admin) after the post has been fetched, so a
// missing post is reported as not-found before any authorization outcome.
type BlogService interface {
	Create(ctx context.Context, in CreateBlogInput) (*domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	List(ctx context.Context) ([]*domain.Blog, error)
	Update(ctx context.Context, id string, caller Caller, in UpdateBlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, id string, caller Caller) (*domain.Blog, error)
}
