package domain

import (
	"errors"
	"time"
)

var ErrBlogNotFound = errors.New("blog not found")
var ErrNotOwner = errors.New("not the owner of this resource")

// Blog is a post on the site. OwnerID references the User that created it;
// posts created before ownership tracking existed have an empty OwnerID.
type Blog struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Title          string    `json:"title" bson:"title"`
	Snippet        string    `json:"snippet,omitempty" bson:"snippet,omitempty"`
	Body           string    `json:"body,omitempty" bson:"body,omitempty"`
	Content        string    `json:"content,omitempty" bson:"content,omitempty"`
	OwnerID        string    `json:"user,omitempty" bson:"user,omitempty"`
	LinkedProjects []string  `json:"linked_projects,omitempty" bson:"linked_projects,omitempty"`
	TwitterEmbeds  []string  `json:"twitter_embeds,omitempty" bson:"twitter_embeds,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// MutableBy is the single authorization predicate for blog mutations:
// the caller owns the post, or the caller is an admin. A blog without an
// owner is only mutable by an admin.
func (b *Blog) MutableBy(userID, role string) bool {
	if role == RoleAdmin {
		return true
	}
	return b.OwnerID != "" && b.OwnerID == userID
}
