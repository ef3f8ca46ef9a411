package services

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	"homeinsight-listings/internal/errors"
)

type fakePhotoLookup struct {
	urls  map[int]string
	err   error
	calls int
	index int
}

func (f *fakePhotoLookup) LookupPhoto(ctx context.Context, listingKey string, index int) (string, error) {
	f.calls++
	f.index = index
	if f.err != nil {
		return "", f.err
	}
	url, ok := f.urls[index]
	if !ok {
		return "", errors.ErrMediaNotFound
	}
	return url, nil
}

func TestResolvePhotoURLCachesHits(t *testing.T) {
	media := &fakePhotoLookup{urls: map[int]string{1: "https://cdn.example.com/1.jpg"}}
	cache := newFakeListingCache()
	svc := NewImageService(media, cache, time.Hour, "https://fallback.example.com/x.png")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		url, err := svc.ResolvePhotoURL(ctx, "X1", 1)
		if err != nil || url != "https://cdn.example.com/1.jpg" {
			t.Fatalf("unexpected %q %v", url, err)
		}
	}
	if media.calls != 1 {
		t.Fatalf("expected one upstream lookup, got %d", media.calls)
	}
}

func TestResolvePhotoURLDoesNotCacheMisses(t *testing.T) {
	media := &fakePhotoLookup{urls: map[int]string{}}
	cache := newFakeListingCache()
	svc := NewImageService(media, cache, time.Hour, "")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.ResolvePhotoURL(ctx, "X1", 5); !goerrors.Is(err, errors.ErrMediaNotFound) {
			t.Fatalf("expected ErrMediaNotFound, got %v", err)
		}
	}
	if media.calls != 2 || cache.sets != 0 {
		t.Fatalf("misses must not be cached: calls=%d sets=%d", media.calls, cache.sets)
	}
}

func TestResolvePhotoURLCacheDownStillResolves(t *testing.T) {
	media := &fakePhotoLookup{urls: map[int]string{0: "https://cdn.example.com/0.jpg"}}
	cache := newFakeListingCache()
	cache.err = goerrors.New("redis down")
	svc := NewImageService(media, cache, time.Hour, "")

	url, err := svc.ResolvePhotoURL(context.Background(), "X1", -3)
	if err != nil || url != "https://cdn.example.com/0.jpg" {
		t.Fatalf("unexpected %q %v", url, err)
	}
	if media.index != 0 {
		t.Fatalf("negative index should be clamped, got %d", media.index)
	}
}

func TestResolvePhotoURLUpstreamError(t *testing.T) {
	media := &fakePhotoLookup{err: &errors.UpstreamMediaError{Status: 500}}
	svc := NewImageService(media, nil, time.Hour, "")

	_, err := svc.ResolvePhotoURL(context.Background(), "X1", 0)
	var upstream *errors.UpstreamMediaError
	if !goerrors.As(err, &upstream) {
		t.Fatalf("expected UpstreamMediaError, got %v", err)
	}
}
