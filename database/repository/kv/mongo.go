package kvRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KVCollection is the collection holding key/value documents.
const KVCollection = "kv"

type kvDocument struct {
	Key       string     `bson:"_id"`
	Value     string     `bson:"value"`
	UpdatedAt time.Time  `bson:"updatedAt"`
	ExpiresAt *time.Time `bson:"expiresAt,omitempty"`
}

// MongoStore implements Store on a single mongo collection.
type MongoStore struct {
	coll *mongo.Collection
	db   *mongo.Database
}

// NewMongoStore returns a Store backed by db.kv and makes sure its TTL index exists.
func NewMongoStore(db *mongo.Database) (*MongoStore, error) {
	s := &MongoStore{coll: db.Collection(KVCollection), db: db}
	if err := s.ensureIndexes(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureIndexes lets mongo reap expired documents on its own.
func (s *MongoStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := s.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create kv ttl index: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongo get %q: %w", key, err)
	}
	// The TTL monitor runs once a minute; hide documents it has not reaped yet.
	if doc.ExpiresAt != nil && !time.Now().Before(*doc.ExpiresAt) {
		return "", false, nil
	}
	return doc.Value, true, nil
}

func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	return s.put(ctx, kvDocument{Key: key, Value: value, UpdatedAt: time.Now()})
}

func (s *MongoStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	expires := time.Now().Add(ttl)
	return s.put(ctx, kvDocument{Key: key, Value: value, UpdatedAt: time.Now(), ExpiresAt: &expires})
}

func (s *MongoStore) put(ctx context.Context, doc kvDocument) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, opts); err != nil {
		return fmt.Errorf("mongo set %q: %w", doc.Key, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %q: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
