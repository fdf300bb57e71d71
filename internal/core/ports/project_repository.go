package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// ProjectRepository defines persistence for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns all projects ordered by featured first, then manual order.
	List(ctx context.Context) ([]*domain.Project, error)
	ListFeatured(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
}
