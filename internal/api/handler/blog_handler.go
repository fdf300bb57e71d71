package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/api/metrics"
	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

// ViewRecorder accepts view events for asynchronous processing.
type ViewRecorder interface {
	Enqueue(event ports.BlogViewInput)
}

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service  ports.BlogService
	views    ports.ViewService
	recorder ViewRecorder
}

func NewBlogHandler(service ports.BlogService, views ports.ViewService, recorder ViewRecorder) *BlogHandler {
	return &BlogHandler{service: service, views: views, recorder: recorder}
}

// Create handles POST /api/blogs. The owner is always the authenticated
// caller; nothing in the body can set it.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog post"
// @Success      201   {object}  domain.Blog
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	blog, err := h.service.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:          req.Title,
		Snippet:        req.Snippet,
		Body:           req.Body,
		Content:        req.Content,
		OwnerID:        caller.UserID,
		LinkedProjects: req.LinkedProjects,
		TwitterEmbeds:  req.TwitterEmbeds,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
		}
		return err
	}

	return c.JSON(http.StatusCreated, blog)
}

// List handles GET /api/blogs (public).
//
// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get handles GET /api/blogs/:id (public). Each hit enqueues a view event;
// the returned count may trail the enqueue by a moment.
//
// @Summary      Get a blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  blogDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	id := c.Param("id")

	blog, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		}
		return err
	}

	views, err := h.views.Count(c.Request().Context(), id)
	if err != nil {
		views = 0 // counts are best-effort
	}

	h.recorder.Enqueue(ports.BlogViewInput{BlogID: id, Timestamp: time.Now().UTC()})

	return c.JSON(http.StatusOK, blogDetail(blog, views))
}

// Update handles PUT /api/blogs/:id. Requires authentication; the mutation
// is allowed for the post's owner or an admin.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to update"
// @Success      200   {object}  domain.Blog
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	blog, err := h.service.Update(c.Request().Context(), c.Param("id"), caller, ports.UpdateBlogInput{
		Title:          req.Title,
		Snippet:        req.Snippet,
		Body:           req.Body,
		Content:        req.Content,
		LinkedProjects: req.LinkedProjects,
		TwitterEmbeds:  req.TwitterEmbeds,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlogNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		case errors.Is(err, domain.ErrNotOwner):
			metrics.AuthzDenialsTotal.WithLabelValues("ownership").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Not authorized to update this blog"})
		}
		return err
	}

	return c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/:id. Same authorization rule as Update.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	blog, err := h.service.Delete(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlogNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		case errors.Is(err, domain.ErrNotOwner):
			metrics.AuthzDenialsTotal.WithLabelValues("ownership").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Not authorized to delete this blog"})
		}
		return err
	}

	return c.JSON(http.StatusOK, blog)
}
