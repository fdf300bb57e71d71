package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hcharper/portfolio-api/internal/core/domain"
)

const blogCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogCollection)}
}

type mongoBlog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Snippet        string             `bson:"snippet,omitempty"`
	Body           string             `bson:"body,omitempty"`
	Content        string             `bson:"content,omitempty"`
	OwnerID        string             `bson:"user,omitempty"`
	LinkedProjects []string           `bson:"linked_projects,omitempty"`
	TwitterEmbeds  []string           `bson:"twitter_embeds,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (mb *mongoBlog) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:             mb.ID.Hex(),
		Title:          mb.Title,
		Snippet:        mb.Snippet,
		Body:           mb.Body,
		Content:        mb.Content,
		OwnerID:        mb.OwnerID,
		LinkedProjects: mb.LinkedProjects,
		TwitterEmbeds:  mb.TwitterEmbeds,
		CreatedAt:      mb.CreatedAt,
		UpdatedAt:      mb.UpdatedAt,
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	doc := mongoBlog{
		Title:          blog.Title,
		Snippet:        blog.Snippet,
		Body:           blog.Body,
		Content:        blog.Content,
		OwnerID:        blog.OwnerID,
		LinkedProjects: blog.LinkedProjects,
		TwitterEmbeds:  blog.TwitterEmbeds,
		CreatedAt:      blog.CreatedAt,
		UpdatedAt:      blog.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	created := *blog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	var mb mongoBlog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return mb.toDomain(), nil
}

// List returns all posts, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]*domain.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Blog
	for cur.Next(ctx) {
		var mb mongoBlog
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		out = append(out, mb.toDomain())
	}
	return out, cur.Err()
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":           blog.Title,
		"snippet":         blog.Snippet,
		"body":            blog.Body,
		"content":         blog.Content,
		"user":            blog.OwnerID,
		"linked_projects": blog.LinkedProjects,
		"twitter_embeds":  blog.TwitterEmbeds,
		"updated_at":      blog.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBlogNotFound
	}
	return r.FindByID(ctx, blog.ID)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (*domain.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlogNotFound
	}

	var mb mongoBlog
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("delete blog: %w", err)
	}
	return mb.toDomain(), nil
}
