package cache

import "testing"

func TestListingTextSearchKeyNormalizes(t *testing.T) {
	a := ListingTextSearchKey("  Downtown TORONTO ")
	b := ListingTextSearchKey("downtown toronto")
	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
	if a != "listings:search:text:downtown toronto" {
		t.Fatalf("unexpected key %q", a)
	}
	if ListingTextSearchKey("a  b") == ListingTextSearchKey("a b") {
		t.Fatal("inner whitespace must stay significant")
	}
}

func TestListingAreaSearchKey(t *testing.T) {
	got := ListingAreaSearchKey(43.6, 43.7, -79.5, -79.3)
	if got != "listings:search:box:43.6:43.7:-79.5:-79.3" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestPhotoURLKey(t *testing.T) {
	if got := PhotoURLKey("X123", 2); got != "listings:photo:X123:2" {
		t.Fatalf("unexpected key %q", got)
	}
}
