package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

type createProjectRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies" validate:"max=6"`
	LocalImage   string   `json:"local_image"`
	SiteURL      string   `json:"site_url"`
	DemoLink     string   `json:"demo_link"`
	GithubLink   string   `json:"github_link"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

type updateProjectRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	LocalImage   *string  `json:"local_image"`
	SiteURL      *string  `json:"site_url"`
	DemoLink     *string  `json:"demo_link"`
	GithubLink   *string  `json:"github_link"`
	Featured     *bool    `json:"featured"`
	Order        *int     `json:"order"`
}

// ProjectHandler handles HTTP requests for portfolio projects. Reads are
// public; mutations sit behind Auth + RequireAdmin in the router.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /api/projects (admin only).
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LocalImage:   req.LocalImage,
		SiteURL:      req.SiteURL,
		DemoLink:     req.DemoLink,
		GithubLink:   req.GithubLink,
		Featured:     req.Featured,
		Order:        req.Order,
	})
	if err != nil {
		return projectError(c, err)
	}

	return c.JSON(http.StatusCreated, project)
}

// List handles GET /api/projects (public).
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListFeatured handles GET /api/projects/featured (public).
func (h *ProjectHandler) ListFeatured(c echo.Context) error {
	projects, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id (public).
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return projectError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:id (admin only).
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LocalImage:   req.LocalImage,
		SiteURL:      req.SiteURL,
		DemoLink:     req.DemoLink,
		GithubLink:   req.GithubLink,
		Featured:     req.Featured,
		Order:        req.Order,
	})
	if err != nil {
		return projectError(c, err)
	}

	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id (admin only).
func (h *ProjectHandler) Delete(c echo.Context) error {
	project, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return projectError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func projectError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, domain.ErrTooManyTechnologies):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrTooManyTechnologies.Error()})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message})
	}
	return err
}
