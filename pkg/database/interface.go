package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type Database interface {
	GetCollection(name string) *mongo.Collection
	CreateListingIndexes(ctx context.Context, collection string) error
	Ping(ctx context.Context) error
}

var _ Database = (*MongoDatabase)(nil)

type MongoDatabase struct {
	db *mongo.Database
}

func NewMongoDatabase(db *mongo.Database) *MongoDatabase {
	return &MongoDatabase{db: db}
}

func (m *MongoDatabase) GetCollection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDatabase) CreateListingIndexes(ctx context.Context, collection string) error {
	return CreateListingIndexes(ctx, m.db.Collection(collection))
}

func (m *MongoDatabase) Ping(ctx context.Context) error {
	return Ping(ctx, m.db.Client())
}
