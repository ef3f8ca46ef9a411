package services

import (
	"regexp"
	"strings"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/pkg/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultTextLimit   int64 = 50
	DefaultBrowseLimit int64 = 3
)

const (
	ModeText   = "text"
	ModeArea   = "area"
	ModeBrowse = "browse"
)

// Fields matched by free-text search, OR'd together.
var textSearchFields = []string{"ListingKey", "Address", "UnparsedAddress", "address", "City", "Municipality"}

// SearchLimits caps the number of documents read per mode. Area search
// shares the browse cap.
type SearchLimits struct {
	Text   int64
	Browse int64
}

func DefaultSearchLimits() SearchLimits {
	return SearchLimits{Text: DefaultTextLimit, Browse: DefaultBrowseLimit}
}

type ListingFilter struct {
	Filter   bson.M
	Limit    int64
	Mode     string
	CacheKey string
}

// BuildListingFilter picks exactly one mode: text when the trimmed query is
// non-empty, otherwise area when a box is given, otherwise browse. Every
// mode requires stored coordinates.
func BuildListingFilter(params models.SearchParams, limits SearchLimits) ListingFilter {
	if limits.Text <= 0 {
		limits.Text = DefaultTextLimit
	}
	if limits.Browse <= 0 {
		limits.Browse = DefaultBrowseLimit
	}

	filter := bson.M{
		"location.coordinates": bson.M{"$exists": true, "$ne": bson.A{}},
	}

	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		or := make(bson.A, 0, len(textSearchFields))
		for _, field := range textSearchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
		return ListingFilter{
			Filter:   filter,
			Limit:    limits.Text,
			Mode:     ModeText,
			CacheKey: cache.ListingTextSearchKey(q),
		}
	}

	if box := params.BoundingBox; box != nil {
		// $box corners are [lng, lat]
		filter["location"] = bson.M{
			"$geoWithin": bson.M{
				"$box": bson.A{
					bson.A{box.MinLng, box.MinLat},
					bson.A{box.MaxLng, box.MaxLat},
				},
			},
		}
		return ListingFilter{
			Filter:   filter,
			Limit:    limits.Browse,
			Mode:     ModeArea,
			CacheKey: cache.ListingAreaSearchKey(box.MinLat, box.MaxLat, box.MinLng, box.MaxLng),
		}
	}

	return ListingFilter{
		Filter:   filter,
		Limit:    limits.Browse,
		Mode:     ModeBrowse,
		CacheKey: cache.ListingBrowseKey(),
	}
}
