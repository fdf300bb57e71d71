package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// BlogRepository defines persistence for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	List(ctx context.Context) ([]*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) (*domain.Blog, error)
}
