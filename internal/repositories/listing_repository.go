package repositories

import (
	"context"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(collection *mongo.Collection) ListingRepository {
	return &listingRepository{collection: collection}
}

// Find returns at most limit documents matching filter in storage order.
func (r *listingRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.StoredListing, error) {
	name := r.collection.Name()
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	utils.RecordMongoOperationDuration("find", name, start)
	if err != nil {
		utils.RecordMongoError("find", name)
		return nil, utils.WrapError(err, "find in %s", name)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	start = time.Now()
	err = cursor.All(ctx, &docs)
	utils.RecordMongoOperationDuration("cursor_all", name, start)
	if err != nil {
		utils.RecordMongoError("cursor_all", name)
		return nil, utils.WrapError(err, "decode %s", name)
	}

	listings := make([]models.StoredListing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, models.StoredListing(doc))
	}
	return listings, nil
}
