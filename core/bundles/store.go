package bundles

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the read-only view of the bundle collection.
type Store interface {
	// FindLinkedBundles returns every bundle with a Wistia project, deleted ones included.
	FindLinkedBundles(ctx context.Context) ([]Bundle, error)
}

// NewMongoStore returns a Store reading from the given collection.
func NewMongoStore(coll *mongo.Collection) Store {
	return &mongoStore{coll: coll}
}

type mongoStore struct {
	coll *mongo.Collection
}

func (s *mongoStore) FindLinkedBundles(ctx context.Context) ([]Bundle, error) {
	filter := bson.M{"wistia.project": bson.M{"$exists": true}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bundles: %w", err)
	}

	var found []Bundle
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode bundles: %w", err)
	}

	return found, nil
}
