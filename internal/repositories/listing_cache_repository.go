package repositories

import (
	"context"
	"errors"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/pkg/cache"
)

type listingCache struct {
	store cache.CacheOperations
}

func NewListingCache(store cache.CacheOperations) ListingCache {
	return &listingCache{store: store}
}

// GetListings returns documents as they round-trip through JSON: object IDs
// and dates come back as strings, nested documents as plain maps.
func (c *listingCache) GetListings(ctx context.Context, key string) ([]models.StoredListing, bool, error) {
	var listings []models.StoredListing
	err := c.store.Get(ctx, key, &listings)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return listings, true, nil
}

func (c *listingCache) SetListings(ctx context.Context, key string, listings []models.StoredListing, expiration time.Duration) error {
	if listings == nil {
		listings = []models.StoredListing{}
	}
	return c.store.Set(ctx, key, listings, expiration)
}

func (c *listingCache) GetPhotoURL(ctx context.Context, key string) (string, bool, error) {
	var url string
	err := c.store.Get(ctx, key, &url)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, url != "", nil
}

func (c *listingCache) SetPhotoURL(ctx context.Context, key, url string, expiration time.Duration) error {
	return c.store.Set(ctx, key, url, expiration)
}
