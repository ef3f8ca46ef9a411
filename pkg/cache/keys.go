package cache

import (
	"fmt"
	"strconv"
	"strings"
)

const keyPrefix = "listings"

// NormalizeQuery folds case only. Inner whitespace is significant to the
// search pattern, so it is kept.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func ListingTextSearchKey(query string) string {
	return fmt.Sprintf("%s:search:text:%s", keyPrefix, NormalizeQuery(query))
}

func ListingAreaSearchKey(minLat, maxLat, minLng, maxLng float64) string {
	return fmt.Sprintf("%s:search:box:%s:%s:%s:%s", keyPrefix,
		formatCoord(minLat), formatCoord(maxLat), formatCoord(minLng), formatCoord(maxLng))
}

func ListingBrowseKey() string {
	return keyPrefix + ":search:browse"
}

// PhotoURLKey identifies the resolved media URL for one photo of a listing.
func PhotoURLKey(listingKey string, index int) string {
	return fmt.Sprintf("%s:photo:%s:%d", keyPrefix, listingKey, index)
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
