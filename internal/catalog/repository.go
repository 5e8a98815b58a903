// Package catalog serves the filtered search over listed gifts.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const giftsCollection = "gifts"

// Filter holds the optional search criteria. Zero-valued fields contribute
// no clause, so an empty Filter matches the whole catalog.
type Filter struct {
	Name      string // case-insensitive substring
	Category  string // exact match
	Condition string // exact match
	AgeYears  *int   // inclusive upper bound
}

// Repository reads gift listings. Documents are returned as-is so fields the
// service does not model pass through unmodified.
type Repository interface {
	Search(ctx context.Context, f Filter) ([]bson.M, error)
}

// MongoRepository implements Repository against the "gifts" collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed catalog repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(giftsCollection)}
}

// Search builds a filter document from the present criteria and materializes
// every matching gift.
func (r *MongoRepository) Search(ctx context.Context, f Filter) ([]bson.M, error) {
	query := bson.M{}

	if name := strings.TrimSpace(f.Name); name != "" {
		query["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if category := strings.TrimSpace(f.Category); category != "" {
		query["category"] = category
	}
	if condition := strings.TrimSpace(f.Condition); condition != "" {
		query["condition"] = condition
	}
	if f.AgeYears != nil {
		query["age_years"] = bson.M{"$lte": *f.AgeYears}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search gifts: %w", err)
	}

	gifts := []bson.M{}
	if err := cursor.All(ctx, &gifts); err != nil {
		return nil, fmt.Errorf("read gifts: %w", err)
	}
	return gifts, nil
}
