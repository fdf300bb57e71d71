package ports

import (
	"context"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// CreateProjectInput carries a new portfolio project.
type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	LocalImage   string
	SiteURL      string
	DemoLink     string
	GithubLink   string
	Featured     bool
	Order        int
}

// UpdateProjectInput carries optional field updates; nil means unchanged.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	Technologies []string
	LocalImage   *string
	SiteURL      *string
	DemoLink     *string
	GithubLink   *string
	Featured     *bool
	Order        *int
}

// ProjectService defines project use cases. Reads are public; mutations
// are admin-only and gated by middleware before reaching the service.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListFeatured(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
}
