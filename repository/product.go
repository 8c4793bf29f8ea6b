package repository

import (
	"context"
	"errors"

	"central-joias/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ProductRepository is the storage boundary for the catalog.
type ProductRepository interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Insert(ctx context.Context, product models.Product) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Deactivate(ctx context.Context, id string) error
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a MongoDB-backed ProductRepository
func NewProductRepository(client *mongo.Client, dbName string) ProductRepository {
	return &mongoProductRepository{
		collection: client.Database(dbName).Collection("products"),
	}
}

// ListActive returns every product still visible on the storefront.
func (r *mongoProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id, "active": true}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (r *mongoProductRepository) Insert(ctx context.Context, product models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// Update applies a partial update. The id field is never overwritten.
func (r *mongoProductRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a product; the document stays for the admin
// but drops out of every storefront listing.
func (r *mongoProductRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
