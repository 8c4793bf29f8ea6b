package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Canonical and legacy slugs for the home document.
const (
	homeSlug       = "home"
	legacyHomeSlug = "Casa"
)

// HomeContentRepository stores the single CMS document behind the home
// page. Documents are kept schemaless: the admin panel owns the shape.
type HomeContentRepository interface {
	Get(ctx context.Context) (map[string]any, error)
	Replace(ctx context.Context, doc map[string]any) error
}

type mongoHomeContentRepository struct {
	collection *mongo.Collection
}

// NewHomeContentRepository creates a MongoDB-backed HomeContentRepository
func NewHomeContentRepository(client *mongo.Client, dbName string) HomeContentRepository {
	return &mongoHomeContentRepository{
		collection: client.Database(dbName).Collection("home_content"),
	}
}

// Get prefers the canonical "home" slug and falls back to the legacy
// "Casa" slug left behind by old admin builds. ErrNotFound means no
// document has ever been saved.
func (r *mongoHomeContentRepository) Get(ctx context.Context) (map[string]any, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var doc map[string]any
	err := r.collection.FindOne(ctx, bson.M{"slug": homeSlug}, opts).Decode(&doc)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	err = r.collection.FindOne(ctx, bson.M{"slug": legacyHomeSlug}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Replace upserts the document under the canonical slug and removes any
// leftovers under the legacy one, so exactly one document survives.
func (r *mongoHomeContentRepository) Replace(ctx context.Context, doc map[string]any) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"slug": legacyHomeSlug}); err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"slug": homeSlug}, doc, opts)
	return err
}
