package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

// ProjectService implements portfolio project use cases. Role gating for
// mutations happens in middleware; the service only validates content.
type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Title == "" || in.Description == "" {
		return nil, &domain.ValidationError{Message: "Title and description are required"}
	}
	if len(in.Technologies) > domain.MaxTechnologies {
		return nil, domain.ErrTooManyTechnologies
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		LocalImage:   in.LocalImage,
		SiteURL:      in.SiteURL,
		DemoLink:     in.DemoLink,
		GithubLink:   in.GithubLink,
		Featured:     in.Featured,
		Order:        in.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) ListFeatured(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Technologies != nil {
		if len(in.Technologies) > domain.MaxTechnologies {
			return nil, domain.ErrTooManyTechnologies
		}
		project.Technologies = in.Technologies
	}
	if in.LocalImage != nil {
		project.LocalImage = *in.LocalImage
	}
	if in.SiteURL != nil {
		project.SiteURL = *in.SiteURL
	}
	if in.DemoLink != nil {
		project.DemoLink = *in.DemoLink
	}
	if in.GithubLink != nil {
		project.GithubLink = *in.GithubLink
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.Order != nil {
		project.Order = *in.Order
	}
	project.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id string) (*domain.Project, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return deleted, nil
}
