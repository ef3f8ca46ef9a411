package services

import (
	"context"
	"time"

	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/logger"
)

const photoCacheName = "photos"

// PhotoLookup resolves one photo of a listing against the media catalog.
type PhotoLookup interface {
	LookupPhoto(ctx context.Context, listingKey string, index int) (string, error)
}

type ImageService struct {
	media       PhotoLookup
	cache       repositories.ListingCache
	cacheTTL    time.Duration
	fallbackURL string
}

// NewImageService wires photo resolution. listingCache may be nil; only found URLs
// are cached.
func NewImageService(media PhotoLookup, listingCache repositories.ListingCache, cacheTTL time.Duration, fallbackURL string) *ImageService {
	return &ImageService{
		media:       media,
		cache:       listingCache,
		cacheTTL:    cacheTTL,
		fallbackURL: fallbackURL,
	}
}

// FallbackURL is where clients are sent when a listing has no photo at the
// requested index.
func (s *ImageService) FallbackURL() string {
	return s.fallbackURL
}

func (s *ImageService) ResolvePhotoURL(ctx context.Context, listingKey string, index int) (string, error) {
	if index < 0 {
		index = 0
	}
	key := cache.PhotoURLKey(listingKey, index)
	useCache := s.cache != nil && s.cacheTTL > 0

	if useCache {
		url, ok, err := s.cache.GetPhotoURL(ctx, key)
		if err != nil {
			logger.GlobalLogger.Debugf("photo cache unavailable: key=%s error=%v", key, err)
		}
		utils.RecordCacheLookup(photoCacheName, ok)
		if ok {
			return url, nil
		}
	}

	url, err := s.media.LookupPhoto(ctx, listingKey, index)
	if err != nil {
		return "", err
	}

	if useCache {
		if err := s.cache.SetPhotoURL(ctx, key, url, s.cacheTTL); err != nil {
			logger.GlobalLogger.Debugf("photo cache write failed: key=%s error=%v", key, err)
		}
	}
	return url, nil
}
