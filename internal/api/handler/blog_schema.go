package handler

import (
	"time"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// errorResponse is the error envelope for the CRUD endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

type createBlogRequest struct {
	Title          string   `json:"title" validate:"required"`
	Snippet        string   `json:"snippet"`
	Body           string   `json:"body"`
	Content        string   `json:"content"`
	LinkedProjects []string `json:"linked_projects"`
	TwitterEmbeds  []string `json:"twitter_embeds"`
}

type updateBlogRequest struct {
	Title          *string  `json:"title"`
	Snippet        *string  `json:"snippet"`
	Body           *string  `json:"body"`
	Content        *string  `json:"content"`
	LinkedProjects []string `json:"linked_projects"`
	TwitterEmbeds  []string `json:"twitter_embeds"`
}

// blogDetailResponse is the single-post view; it carries the running view
// count alongside the document fields.
type blogDetailResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Snippet        string    `json:"snippet,omitempty"`
	Body           string    `json:"body,omitempty"`
	Content        string    `json:"content,omitempty"`
	User           string    `json:"user,omitempty"`
	LinkedProjects []string  `json:"linked_projects,omitempty"`
	TwitterEmbeds  []string  `json:"twitter_embeds,omitempty"`
	Views          int64     `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func blogDetail(b *domain.Blog, views int64) blogDetailResponse {
	return blogDetailResponse{
		ID:             b.ID,
		Title:          b.Title,
		Snippet:        b.Snippet,
		Body:           b.Body,
		Content:        b.Content,
		User:           b.OwnerID,
		LinkedProjects: b.LinkedProjects,
		TwitterEmbeds:  b.TwitterEmbeds,
		Views:          views,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
