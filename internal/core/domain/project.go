package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrTooManyTechnologies = errors.New("maximum 6 technologies allowed")

// MaxTechnologies caps the stack list shown on a project card.
const MaxTechnologies = 6

// Project is a portfolio entry. Projects are site-wide content managed by
// admins only, so they carry no owner reference.
type Project struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Technologies []string  `json:"technologies,omitempty" bson:"technologies,omitempty"`
	LocalImage   string    `json:"local_image,omitempty" bson:"local_image,omitempty"`
	SiteURL      string    `json:"site_url,omitempty" bson:"site_url,omitempty"`
	DemoLink     string    `json:"demo_link,omitempty" bson:"demo_link,omitempty"`
	GithubLink   string    `json:"github_link,omitempty" bson:"github_link,omitempty"`
	Featured     bool      `json:"featured" bson:"featured"`
	Order        int       `json:"order" bson:"order"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
