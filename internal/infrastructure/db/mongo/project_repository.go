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

const projectCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectCollection)}
}

type mongoProject struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Technologies []string           `bson:"technologies,omitempty"`
	LocalImage   string             `bson:"local_image,omitempty"`
	SiteURL      string             `bson:"site_url,omitempty"`
	DemoLink     string             `bson:"demo_link,omitempty"`
	GithubLink   string             `bson:"github_link,omitempty"`
	Featured     bool               `bson:"featured"`
	Order        int                `bson:"order"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (mp *mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:           mp.ID.Hex(),
		Title:        mp.Title,
		Description:  mp.Description,
		Technologies: mp.Technologies,
		LocalImage:   mp.LocalImage,
		SiteURL:      mp.SiteURL,
		DemoLink:     mp.DemoLink,
		GithubLink:   mp.GithubLink,
		Featured:     mp.Featured,
		Order:        mp.Order,
		CreatedAt:    mp.CreatedAt,
		UpdatedAt:    mp.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		Title:        project.Title,
		Description:  project.Description,
		Technologies: project.Technologies,
		LocalImage:   project.LocalImage,
		SiteURL:      project.SiteURL,
		DemoLink:     project.DemoLink,
		GithubLink:   project.GithubLink,
		Featured:     project.Featured,
		Order:        project.Order,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *project
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns every project, featured ones first, then by manual order.
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	return r.find(ctx, bson.M{})
}

// ListFeatured returns only featured projects, by manual order.
func (r *ProjectRepository) ListFeatured(ctx context.Context) ([]*domain.Project, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M) ([]*domain.Project, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "order", Value: 1},
	})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Project
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	return out, cur.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(project.ID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":        project.Title,
		"description":  project.Description,
		"technologies": project.Technologies,
		"local_image":  project.LocalImage,
		"site_url":     project.SiteURL,
		"demo_link":    project.DemoLink,
		"github_link":  project.GithubLink,
		"featured":     project.Featured,
		"order":        project.Order,
		"updated_at":   project.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return r.FindByID(ctx, project.ID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("delete project: %w", err)
	}
	return mp.toDomain(), nil
}
