package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
	"github.com/hcharper/portfolio-api/pkg/logger"
)

type stubBlogRepo struct {
	blogs  map[string]*domain.Blog
	nextID int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: make(map[string]*domain.Blog)}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBlogRepo) Create(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	r.nextID++
	created := cloneBlog(blog)
	created.ID = "b" + strconv.Itoa(r.nextID)
	r.blogs[created.ID] = cloneBlog(created)
	return created, nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	if b, ok := r.blogs[id]; ok {
		return cloneBlog(b), nil
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) List(_ context.Context) ([]*domain.Blog, error) {
	out := make([]*domain.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		out = append(out, cloneBlog(b))
	}
	return out, nil
}

func (r *stubBlogRepo) Update(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	if _, ok := r.blogs[blog.ID]; !ok {
		return nil, domain.ErrBlogNotFound
	}
	r.blogs[blog.ID] = cloneBlog(blog)
	return cloneBlog(blog), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) (*domain.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return b, nil
}

func newBlogService(repo ports.BlogRepository) *BlogService {
	return NewBlogService(repo, logger.Init(logger.Options{Level: "error"}))
}

func seedBlog(t *testing.T, svc *BlogService, owner string) *domain.Blog {
	t.Helper()
	blog, err := svc.Create(context.Background(), ports.CreateBlogInput{
		Title:   "post",
		Body:    "body",
		OwnerID: owner,
	})
	if err != nil {
		t.Fatalf("seed blog: %v", err)
	}
	return blog
}

func strptr(s string) *string { return &s }

func TestBlogService_Create_SetsOwner(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())

	blog := seedBlog(t, svc, "u1")
	if blog.OwnerID != "u1" {
		t.Fatalf("expected owner u1, got %q", blog.OwnerID)
	}
}

func TestBlogService_Create_RequiresTitle(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())

	_, err := svc.Create(context.Background(), ports.CreateBlogInput{OwnerID: "u1"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBlogService_Update_OwnerAllowed(t *testing.T) {
	repo := newStubBlogRepo()
	svc := newBlogService(repo)
	blog := seedBlog(t, svc, "u1")

	updated, err := svc.Update(context.Background(), blog.ID,
		ports.Caller{UserID: "u1", Role: domain.RoleUser},
		ports.UpdateBlogInput{Title: strptr("edited")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "edited" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
}

func TestBlogService_Update_NonOwnerForbidden(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())
	blog := seedBlog(t, svc, "u1")

	_, err := svc.Update(context.Background(), blog.ID,
		ports.Caller{UserID: "u2", Role: domain.RoleUser},
		ports.UpdateBlogInput{Title: strptr("hijack")})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestBlogService_Update_AdminAllowed(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())
	blog := seedBlog(t, svc, "u1")

	if _, err := svc.Update(context.Background(), blog.ID,
		ports.Caller{UserID: "admin1", Role: domain.RoleAdmin},
		ports.UpdateBlogInput{Title: strptr("moderated")}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestBlogService_Update_NotFoundBeforeOwnership(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())

	_, err := svc.Update(context.Background(), "missing",
		ports.Caller{UserID: "u2", Role: domain.RoleUser},
		ports.UpdateBlogInput{Title: strptr("x")})
	if !errors.Is(err, domain.ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestBlogService_OrphanBlogAdminOnly(t *testing.T) {
	svc := newBlogService(newStubBlogRepo())
	blog := seedBlog(t, svc, "") // pre-ownership post

	_, err := svc.Delete(context.Background(), blog.ID, ports.Caller{UserID: "u1", Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for orphan blog, got %v", err)
	}

	if _, err := svc.Delete(context.Background(), blog.ID, ports.Caller{UserID: "admin1", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin delete of orphan blog failed: %v", err)
	}
}

func TestBlogService_Delete_OwnershipRule(t *testing.T) {
	repo := newStubBlogRepo()
	svc := newBlogService(repo)
	blog := seedBlog(t, svc, "u1")

	if _, err := svc.Delete(context.Background(), blog.ID, ports.Caller{UserID: "u2", Role: domain.RoleUser}); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, ok := repo.blogs[blog.ID]; !ok {
		t.Fatalf("blog removed despite denial")
	}

	deleted, err := svc.Delete(context.Background(), blog.ID, ports.Caller{UserID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if deleted.ID != blog.ID {
		t.Fatalf("unexpected deleted blog: %+v", deleted)
	}
	if _, ok := repo.blogs[blog.ID]; ok {
		t.Fatalf("blog still present after delete")
	}
}
