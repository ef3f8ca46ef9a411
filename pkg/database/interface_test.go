package database

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoDatabase(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("collection", func(mt *mtest.T) {
		db := NewMongoDatabase(mt.DB)
		coll := db.GetCollection("properties_lite")
		if coll.Name() != "properties_lite" || coll.Database().Name() != mt.DB.Name() {
			t.Fatalf("unexpected collection %s.%s", coll.Database().Name(), coll.Name())
		}
	})

	mt.Run("ping", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		if err := NewMongoDatabase(mt.DB).Ping(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("ping failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))
		if err := NewMongoDatabase(mt.DB).Ping(context.Background()); err == nil {
			t.Fatal("expected ping error")
		}
	})

	mt.Run("indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		if err := NewMongoDatabase(mt.DB).CreateListingIndexes(context.Background(), "properties_lite"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
