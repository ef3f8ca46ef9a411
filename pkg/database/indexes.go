package database

import (
	"context"
	"time"

	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListingIndexes covers exact-match fields only. Nothing here may reject a
// write from the ingest side, so location stays unindexed.
func ListingIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "ListingKey", Value: 1}}},
		{Keys: bson.D{{Key: "City", Value: 1}}},
	}
}

// CreateListingIndexes is idempotent; existing indexes with the same keys are kept.
func CreateListingIndexes(ctx context.Context, collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, ListingIndexes())
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", collection.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", collection.Name()).Inc()
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
