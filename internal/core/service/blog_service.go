package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

// BlogService implements blog use cases. Mutations run the ownership rule
// (domain.Blog.MutableBy) after the post is fetched, so not-found always
// wins over not-authorized.
type BlogService struct {
	repo ports.BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, log: log}
}

func (s *BlogService) Create(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error) {
	if in.Title == "" {
		return nil, &domain.ValidationError{Message: "Title is required"}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Blog{
		Title:          in.Title,
		Snippet:        in.Snippet,
		Body:           in.Body,
		Content:        in.Content,
		OwnerID:        in.OwnerID,
		LinkedProjects: in.LinkedProjects,
		TwitterEmbeds:  in.TwitterEmbeds,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("blog_id", created.ID).Str("owner", created.OwnerID).Msg("blog created")
	return created, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]*domain.Blog, error) {
	return s.repo.List(ctx)
}

func (s *BlogService) Update(ctx context.Context, id string, caller ports.Caller, in ports.UpdateBlogInput) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !blog.MutableBy(caller.UserID, caller.Role) {
		return nil, domain.ErrNotOwner
	}

	if in.Title != nil {
		blog.Title = *in.Title
	}
	if in.Snippet != nil {
		blog.Snippet = *in.Snippet
	}
	if in.Body != nil {
		blog.Body = *in.Body
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.LinkedProjects != nil {
		blog.LinkedProjects = in.LinkedProjects
	}
	if in.TwitterEmbeds != nil {
		blog.TwitterEmbeds = in.TwitterEmbeds
	}
	blog.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("blog_id", id).Str("caller", caller.UserID).Msg("blog updated")
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string, caller ports.Caller) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !blog.MutableBy(caller.UserID, caller.Role) {
		return nil, domain.ErrNotOwner
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("blog_id", id).Str("caller", caller.UserID).Msg("blog deleted")
	return deleted, nil
}
