package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diagramlab/stencil/pkg/document"
)

// MongoStore persists documents in a MongoDB collection, one record per
// diagram document keyed by _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures a MongoDB-backed store.
type MongoConfig struct {
	URI        string // connection string (e.g., "mongodb://localhost:27017")
	Database   string // defaults to "stencil"
	Collection string // defaults to "documents"
}

// mongoRecord is the stored shape: the diagram document nested under a field
// so _id stays a plain string key.
type mongoRecord struct {
	ID  string            `bson:"_id"`
	Doc document.Document `bson:"doc"`
}

// NewMongoStore creates a MongoDB-backed store and verifies connectivity.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "stencil"
	}
	if cfg.Collection == "" {
		cfg.Collection = "documents"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (document.Document, error) {
	var rec mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return document.Document{}, ErrNotFound
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("mongodb find: %w", err)
	}
	return rec.Doc, nil
}

// Set stores a document under the given ID (upsert).
func (s *MongoStore) Set(ctx context.Context, id string, doc document.Document) error {
	rec := mongoRecord{ID: id, Doc: doc}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb replace: %w", err)
	}
	return nil
}

// Delete removes a document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongodb delete: %w", err)
	}
	return nil
}

// List returns the IDs of all stored documents.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb distinct: %w", err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Close disconnects the underlying MongoDB client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
