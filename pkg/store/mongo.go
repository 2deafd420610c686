package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

const mongoCollection = "snapshots"

// MongoStore keeps snapshots as BSON documents keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoRecord wraps a snapshot for storage. The name doubles as the
// document ID, which gives upsert-by-name semantics for free.
type mongoRecord struct {
	Name  string            `bson:"_id"`
	Graph snapshot.Document `bson:"graph"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. An empty database falls back to "graphsense".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = "graphsense"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, name string, doc snapshot.Document) error {
	if err := checkName(name); err != nil {
		return err
	}
	rec := mongoRecord{Name: name, Graph: doc}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (snapshot.Document, error) {
	if err := checkName(name); err != nil {
		return snapshot.Document{}, err
	}
	var rec mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return snapshot.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return snapshot.Document{}, fmt.Errorf("mongo find: %w", err)
	}
	return rec.Graph, nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var row struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode snapshot name: %w", err)
		}
		names = append(names, row.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
