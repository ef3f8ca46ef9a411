package services

import (
	"regexp"
	"testing"

	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testBox = &models.BoundingBox{MinLat: 43.6, MaxLat: 43.7, MinLng: -79.5, MaxLng: -79.3}

func textPattern(t *testing.T, lf ListingFilter) primitive.Regex {
	t.Helper()
	or, ok := lf.Filter["$or"].(bson.A)
	if !ok || len(or) != len(textSearchFields) {
		t.Fatalf("expected $or over %d fields, got %v", len(textSearchFields), lf.Filter["$or"])
	}
	first := or[0].(bson.M)
	re, ok := first["ListingKey"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex on ListingKey, got %v", first)
	}
	return re
}

func TestBuildListingFilterText(t *testing.T) {
	lf := BuildListingFilter(models.SearchParams{Query: "  Main St "}, DefaultSearchLimits())
	if lf.Mode != ModeText || lf.Limit != 50 {
		t.Fatalf("expected text mode capped at 50, got %s %d", lf.Mode, lf.Limit)
	}
	re := textPattern(t, lf)
	if re.Pattern != "Main St" || re.Options != "i" {
		t.Fatalf("unexpected regex %v", re)
	}
	or := lf.Filter["$or"].(bson.A)
	for i, field := range textSearchFields {
		if _, ok := or[i].(bson.M)[field]; !ok {
			t.Fatalf("expected clause %d on %s, got %v", i, field, or[i])
		}
	}
	if _, ok := lf.Filter["location"]; ok {
		t.Fatal("text search must not carry a geo clause")
	}
}

func TestBuildListingFilterEscapesMetacharacters(t *testing.T) {
	lf := BuildListingFilter(models.SearchParams{Query: "(Downtown)"}, DefaultSearchLimits())
	re := regexp.MustCompile("(?" + textPattern(t, lf).Options + ")" + textPattern(t, lf).Pattern)

	if !re.MatchString("Loft in (downtown) core") {
		t.Fatal("expected literal parentheses to match")
	}
	if re.MatchString("Downtown") {
		t.Fatal("parentheses must not act as a group")
	}

	lf = BuildListingFilter(models.SearchParams{Query: "a.b*"}, DefaultSearchLimits())
	re = regexp.MustCompile("(?i)" + textPattern(t, lf).Pattern)
	if re.MatchString("axbbb") || !re.MatchString("A.B*") {
		t.Fatal("expected dot and star to be literal")
	}
}

func TestBuildListingFilterTextWinsOverBox(t *testing.T) {
	lf := BuildListingFilter(models.SearchParams{Query: "Toronto", BoundingBox: testBox}, DefaultSearchLimits())
	if lf.Mode != ModeText || lf.Limit != 50 {
		t.Fatalf("expected text mode, got %s", lf.Mode)
	}
	if _, ok := lf.Filter["location"]; ok {
		t.Fatal("box must be ignored when a query is present")
	}
}

func TestBuildListingFilterArea(t *testing.T) {
	lf := BuildListingFilter(models.SearchParams{Query: "   ", BoundingBox: testBox}, DefaultSearchLimits())
	if lf.Mode != ModeArea || lf.Limit != 3 {
		t.Fatalf("expected area mode capped at 3, got %s %d", lf.Mode, lf.Limit)
	}
	geo := lf.Filter["location"].(bson.M)["$geoWithin"].(bson.M)["$box"].(bson.A)
	lower, upper := geo[0].(bson.A), geo[1].(bson.A)
	if lower[0] != -79.5 || lower[1] != 43.6 || upper[0] != -79.3 || upper[1] != 43.7 {
		t.Fatalf("expected [lng, lat] corners, got %v", geo)
	}
	if _, ok := lf.Filter["$or"]; ok {
		t.Fatal("area search must not carry text clauses")
	}
}

func TestBuildListingFilterBrowse(t *testing.T) {
	lf := BuildListingFilter(models.SearchParams{}, DefaultSearchLimits())
	if lf.Mode != ModeBrowse || lf.Limit != 3 {
		t.Fatalf("expected browse mode capped at 3, got %s %d", lf.Mode, lf.Limit)
	}
	if len(lf.Filter) != 1 {
		t.Fatalf("expected only the coordinates clause, got %v", lf.Filter)
	}
}

func TestBuildListingFilterRequiresCoordinates(t *testing.T) {
	for _, params := range []models.SearchParams{
		{Query: "x"},
		{BoundingBox: testBox},
		{},
	} {
		lf := BuildListingFilter(params, DefaultSearchLimits())
		clause, ok := lf.Filter["location.coordinates"].(bson.M)
		if !ok || clause["$exists"] != true {
			t.Fatalf("mode %s: expected coordinates clause, got %v", lf.Mode, lf.Filter)
		}
		if ne, ok := clause["$ne"].(bson.A); !ok || len(ne) != 0 {
			t.Fatalf("mode %s: expected $ne [], got %v", lf.Mode, clause["$ne"])
		}
	}
}

func TestBuildListingFilterCustomLimits(t *testing.T) {
	limits := SearchLimits{Text: 10, Browse: 5}
	if lf := BuildListingFilter(models.SearchParams{Query: "x"}, limits); lf.Limit != 10 {
		t.Fatalf("expected 10, got %d", lf.Limit)
	}
	if lf := BuildListingFilter(models.SearchParams{}, limits); lf.Limit != 5 {
		t.Fatalf("expected 5, got %d", lf.Limit)
	}
	if lf := BuildListingFilter(models.SearchParams{}, SearchLimits{}); lf.Limit != DefaultBrowseLimit {
		t.Fatalf("expected default cap, got %d", lf.Limit)
	}
}
