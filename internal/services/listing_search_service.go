package services

import (
	"context"
	"fmt"
	"time"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/transformers"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"
)

const listingCacheName = "listings"

type ListingSearchService struct {
	repo         repositories.ListingRepository
	cache        repositories.ListingCache
	listingTrans transformers.ListingTransformer
	limits       SearchLimits
	cacheTTL     time.Duration
}

// NewListingSearchService wires the search path. listingCache may be nil, and a
// zero cacheTTL disables caching.
func NewListingSearchService(
	repo repositories.ListingRepository,
	listingCache repositories.ListingCache,
	listingTrans transformers.ListingTransformer,
	limits SearchLimits,
	cacheTTL time.Duration,
) *ListingSearchService {
	return &ListingSearchService{
		repo:         repo,
		cache:        listingCache,
		listingTrans: listingTrans,
		limits:       limits,
		cacheTTL:     cacheTTL,
	}
}

// Search reads at most one mode's cap of documents and normalizes each.
// Storage failures surface as ErrQueryFailed; details are only logged.
func (s *ListingSearchService) Search(ctx context.Context, params models.SearchParams) ([]models.NormalizedListing, error) {
	lf := BuildListingFilter(params, s.limits)

	docs, err := s.fetch(ctx, lf)
	if err != nil {
		logger.GlobalLogger.Errorf("listing query failed: mode=%s query=%q retryable=%t error=%v",
			lf.Mode, params.Query, utils.IsRetryableError(err), err)
		return nil, fmt.Errorf("%w: %v", errors.ErrQueryFailed, err)
	}

	listings := make([]models.NormalizedListing, 0, len(docs))
	for i, doc := range docs {
		listing, err := s.listingTrans.Normalize(doc)
		if err != nil {
			logger.GlobalLogger.Errorf("skipping listing %d: mode=%s error=%v", i, lf.Mode, err)
			continue
		}
		listings = append(listings, *listing)
	}

	metrics.ListingsReturned.WithLabelValues(lf.Mode).Observe(float64(len(listings)))
	logger.GlobalLogger.Debugf("listing search: mode=%s query=%q returned=%d", lf.Mode, params.Query, len(listings))
	return listings, nil
}

func (s *ListingSearchService) fetch(ctx context.Context, lf ListingFilter) ([]models.StoredListing, error) {
	useCache := s.cache != nil && s.cacheTTL > 0
	if useCache {
		docs, ok, err := s.cache.GetListings(ctx, lf.CacheKey)
		if err != nil {
			logger.GlobalLogger.Debugf("listing cache unavailable: key=%s retryable=%t error=%v", lf.CacheKey, cache.IsRetryable(err), err)
		}
		utils.RecordCacheLookup(listingCacheName, ok)
		if ok {
			return docs, nil
		}
	}

	docs, err := s.repo.Find(ctx, lf.Filter, lf.Limit)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := s.cache.SetListings(ctx, lf.CacheKey, docs, s.cacheTTL); err != nil {
			logger.GlobalLogger.Debugf("listing cache write failed: key=%s error=%v", lf.CacheKey, err)
		}
	}
	return docs, nil
}
