package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

type stubBlogService struct {
	createFn func(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error)
	getFn    func(ctx context.Context, id string) (*domain.Blog, error)
	listFn   func(ctx context.Context) ([]*domain.Blog, error)
	updateFn func(ctx context.Context, id string, caller ports.Caller, in ports.UpdateBlogInput) (*domain.Blog, error)
	deleteFn func(ctx context.Context, id string, caller ports.Caller) (*domain.Blog, error)
}

func (s *stubBlogService) Create(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error) {
	return s.createFn(ctx, in)
}

func (s *stubBlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.getFn(ctx, id)
}

func (s *stubBlogService) List(ctx context.Context) ([]*domain.Blog, error) {
	return s.listFn(ctx)
}

func (s *stubBlogService) Update(ctx context.Context, id string, caller ports.Caller, in ports.UpdateBlogInput) (*domain.Blog, error) {
	return s.updateFn(ctx, id, caller, in)
}

func (s *stubBlogService) Delete(ctx context.Context, id string, caller ports.Caller) (*domain.Blog, error) {
	return s.deleteFn(ctx, id, caller)
}

type stubViewService struct {
	countFn func(ctx context.Context, blogID string) (int64, error)
}

func (s *stubViewService) Process(ctx context.Context, in ports.BlogViewInput) error {
	return nil
}

func (s *stubViewService) Count(ctx context.Context, blogID string) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx, blogID)
	}
	return 0, nil
}

type stubRecorder struct {
	events []ports.BlogViewInput
}

func (s *stubRecorder) Enqueue(event ports.BlogViewInput) {
	s.events = append(s.events, event)
}

func newBlogContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asCaller(c echo.Context, userID, role string) {
	c.Set("user_id", userID)
	c.Set("role", role)
}

func TestBlogHandler_Create_OwnerFromToken(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubBlogService{
		createFn: func(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error) {
			if in.OwnerID != "u1" {
				t.Fatalf("expected owner u1, got %q", in.OwnerID)
			}
			return &domain.Blog{ID: "b1", Title: in.Title, OwnerID: in.OwnerID}, nil
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, rec := newBlogContext(e, http.MethodPost, "/api/blogs", `{"title":"First post","user":"someone-else"}`)
	asCaller(c, "u1", domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBlogHandler_Create_RequiresAuth(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubBlogService{
		createFn: func(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, _ := newBlogContext(e, http.MethodPost, "/api/blogs", `{"title":"First post"}`)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestBlogHandler_Get_CountsAndEnqueues(t *testing.T) {
	e := echo.New()
	recorder := &stubRecorder{}
	stub := &stubBlogService{
		getFn: func(ctx context.Context, id string) (*domain.Blog, error) {
			return &domain.Blog{ID: id, Title: "Post", OwnerID: "u1"}, nil
		},
	}
	views := &stubViewService{
		countFn: func(ctx context.Context, blogID string) (int64, error) { return 41, nil },
	}
	handler := NewBlogHandler(stub, views, recorder)

	c, rec := newBlogContext(e, http.MethodGet, "/api/blogs/b1", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["views"] != float64(41) {
		t.Fatalf("expected 41 views, got %v", resp["views"])
	}

	if len(recorder.events) != 1 || recorder.events[0].BlogID != "b1" {
		t.Fatalf("expected one enqueued view for b1, got %+v", recorder.events)
	}
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	recorder := &stubRecorder{}
	stub := &stubBlogService{
		getFn: func(ctx context.Context, id string) (*domain.Blog, error) {
			return nil, domain.ErrBlogNotFound
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, recorder)

	c, rec := newBlogContext(e, http.MethodGet, "/api/blogs/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if len(recorder.events) != 0 {
		t.Fatalf("no view should be enqueued for a missing post")
	}
}

func TestBlogHandler_Update_Forbidden(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		updateFn: func(ctx context.Context, id string, caller ports.Caller, in ports.UpdateBlogInput) (*domain.Blog, error) {
			return nil, domain.ErrNotOwner
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, rec := newBlogContext(e, http.MethodPut, "/api/blogs/b1", `{"title":"Edited"}`)
	c.SetParamNames("id")
	c.SetParamValues("b1")
	asCaller(c, "u2", domain.RoleUser)

	_ = handler.Update(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Not authorized to update this blog" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestBlogHandler_Update_NotFoundBeforeForbidden(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		updateFn: func(ctx context.Context, id string, caller ports.Caller, in ports.UpdateBlogInput) (*domain.Blog, error) {
			return nil, domain.ErrBlogNotFound
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, rec := newBlogContext(e, http.MethodPut, "/api/blogs/missing", `{"title":"Edited"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	asCaller(c, "u2", domain.RoleUser)

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Not found" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestBlogHandler_Delete_Forbidden(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		deleteFn: func(ctx context.Context, id string, caller ports.Caller) (*domain.Blog, error) {
			return nil, domain.ErrNotOwner
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, rec := newBlogContext(e, http.MethodDelete, "/api/blogs/b1", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	asCaller(c, "u2", domain.RoleUser)

	_ = handler.Delete(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Not authorized to delete this blog" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestBlogHandler_Delete_AdminAllowed(t *testing.T) {
	e := echo.New()
	stub := &stubBlogService{
		deleteFn: func(ctx context.Context, id string, caller ports.Caller) (*domain.Blog, error) {
			if caller.Role != domain.RoleAdmin {
				t.Fatalf("expected admin caller, got %+v", caller)
			}
			return &domain.Blog{ID: id, Title: "Post", OwnerID: "someone-else"}, nil
		},
	}
	handler := NewBlogHandler(stub, &stubViewService{}, &stubRecorder{})

	c, rec := newBlogContext(e, http.MethodDelete, "/api/blogs/b1", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	asCaller(c, "admin1", domain.RoleAdmin)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
