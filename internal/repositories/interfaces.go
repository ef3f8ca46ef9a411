package repositories

import (
	"context"
	"time"

	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListingRepository reads raw listing documents from storage.
type ListingRepository interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.StoredListing, error)
}

// ListingCache holds raw search results and resolved photo URLs.
// Lookups report a miss with ok=false and a nil error.
type ListingCache interface {
	GetListings(ctx context.Context, key string) ([]models.StoredListing, bool, error)
	SetListings(ctx context.Context, key string, listings []models.StoredListing, expiration time.Duration) error
	GetPhotoURL(ctx context.Context, key string) (string, bool, error)
	SetPhotoURL(ctx context.Context, key, url string, expiration time.Duration) error
}
