package handlers

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/middleware"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/validators"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearcher struct {
	listings []models.NormalizedListing
	err      error
	got      models.SearchParams
}

func (s *stubSearcher) Search(ctx context.Context, params models.SearchParams) ([]models.NormalizedListing, error) {
	s.got = params
	return s.listings, s.err
}

type stubResolver struct {
	url      string
	err      error
	gotKey   string
	gotIndex int
}

func (s *stubResolver) ResolvePhotoURL(ctx context.Context, key string, index int) (string, error) {
	s.gotKey, s.gotIndex = key, index
	return s.url, s.err
}

func (s *stubResolver) FallbackURL() string {
	return "https://cdn-icons-png.flaticon.com/512/25/25694.png"
}

func newTestRouter(searcher ListingSearcher, resolver PhotoResolver) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	api.GET("/listings", NewListingHandler(searcher, validators.NewListingValidator()).SearchListings)
	api.GET("/image/:key", NewImageHandler(resolver).RedirectToPhoto)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSearchListingsOK(t *testing.T) {
	searcher := &stubSearcher{listings: []models.NormalizedListing{{MLSNumber: "C1", Cooling: []interface{}{}}}}
	w := get(newTestRouter(searcher, &stubResolver{}), "/api/listings?query=%28Downtown%29")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if searcher.got.Query != "(Downtown)" {
		t.Fatalf("unexpected params %+v", searcher.got)
	}
	var body struct {
		Listings []map[string]interface{} `json:"listings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Listings) != 1 || body.Listings[0]["mlsNumber"] != "C1" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if _, ok := body.Listings[0]["origEntryTimestamp"]; !ok {
		t.Fatal("origEntryTimestamp must be present even when null")
	}
}

func TestSearchListingsEmpty(t *testing.T) {
	searcher := &stubSearcher{listings: []models.NormalizedListing{}}
	w := get(newTestRouter(searcher, &stubResolver{}), "/api/listings")
	if w.Code != http.StatusOK || w.Body.String() != `{"listings":[]}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestSearchListingsBoundingBox(t *testing.T) {
	searcher := &stubSearcher{listings: []models.NormalizedListing{}}
	get(newTestRouter(searcher, &stubResolver{}), "/api/listings?minLat=43.6&maxLat=43.7&minLng=-79.5&maxLng=-79.3")
	if searcher.got.BoundingBox == nil || searcher.got.BoundingBox.MinLng != -79.5 {
		t.Fatalf("expected bounding box, got %+v", searcher.got)
	}
}

func TestSearchListingsInvalidBox(t *testing.T) {
	w := get(newTestRouter(&stubSearcher{}, &stubResolver{}), "/api/listings?minLat=abc&maxLat=1&minLng=0&maxLng=1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSearchListingsQueryFailed(t *testing.T) {
	searcher := &stubSearcher{err: errors.ErrQueryFailed}
	w := get(newTestRouter(searcher, &stubResolver{}), "/api/listings?query=x")
	if w.Code != http.StatusInternalServerError || w.Body.String() != `{"error":"Failed to fetch listings"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRedirectToPhoto(t *testing.T) {
	resolver := &stubResolver{url: "https://cdn.example.com/2.jpg"}
	w := get(newTestRouter(&stubSearcher{}, resolver), "/api/image/X123?index=2")

	if w.Code != http.StatusTemporaryRedirect || w.Header().Get("Location") != "https://cdn.example.com/2.jpg" {
		t.Fatalf("unexpected response %d %v", w.Code, w.Header())
	}
	if resolver.gotKey != "X123" || resolver.gotIndex != 2 {
		t.Fatalf("unexpected lookup %s %d", resolver.gotKey, resolver.gotIndex)
	}
}

func TestRedirectToPhotoIndexParsing(t *testing.T) {
	cases := map[string]int{
		"":           0,
		"?index=abc": 0,
		"?index=-3":  0,
		"?index=4":   4,
		"?index=3px": 3,
	}
	for query, want := range cases {
		resolver := &stubResolver{url: "https://cdn.example.com/a.jpg"}
		get(newTestRouter(&stubSearcher{}, resolver), "/api/image/X1"+query)
		if resolver.gotIndex != want {
			t.Fatalf("%q: expected index %d, got %d", query, want, resolver.gotIndex)
		}
	}
}

func TestRedirectToPhotoFallback(t *testing.T) {
	resolver := &stubResolver{err: errors.ErrMediaNotFound}
	w := get(newTestRouter(&stubSearcher{}, resolver), "/api/image/X1?index=40")
	if w.Code != http.StatusTemporaryRedirect || w.Header().Get("Location") != "https://cdn-icons-png.flaticon.com/512/25/25694.png" {
		t.Fatalf("unexpected response %d %v", w.Code, w.Header())
	}
}

func TestRedirectToPhotoErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{&errors.UpstreamMediaError{Status: 500}, http.StatusBadGateway, "Upstream error: 500"},
		{errors.ErrUpstreamAuth, http.StatusBadGateway, errors.MsgUpstreamAuth},
		{goerrors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		w := get(newTestRouter(&stubSearcher{}, &stubResolver{err: tc.err}), "/api/image/X1")
		if w.Code != tc.status || w.Body.String() != tc.body {
			t.Fatalf("%v: unexpected response %d %q", tc.err, w.Code, w.Body.String())
		}
	}
}
