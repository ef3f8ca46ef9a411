// internal/models/listing.go
package models

// StoredListing is a property document as held by the listings collection.
// Field names and presence vary per record; values are left loosely typed
// (numbers, strings, lists, nested documents, timestamps).
type StoredListing map[string]interface{}

// NormalizedListing is the fixed-shape view model returned to clients.
// List fields are passed through from the source without element validation.
type NormalizedListing struct {
	ID                 string        `json:"id"`
	ListingKey         string        `json:"listingKey"`
	MLSNumber          string        `json:"mlsNumber"`
	Price              float64       `json:"price"`
	Type               string        `json:"type"`
	Status             string        `json:"status"`
	PropertyType       string        `json:"propertyType"`
	Beds               float64       `json:"beds"`
	Baths              float64       `json:"baths"`
	Parking            float64       `json:"parking"`
	DaysOnMarket       int           `json:"daysOnMarket"`
	Lat                float64       `json:"lat"`
	Lng                float64       `json:"lng"`
	Address            string        `json:"address"`
	City               string        `json:"city"`
	FullAddress        string        `json:"fullAddress"`
	Description        string        `json:"description"`
	Taxes              float64       `json:"taxes"`
	Cooling            []interface{} `json:"cooling"`
	Heating            []interface{} `json:"heating"`
	Rooms              []interface{} `json:"rooms"`
	OrigEntryTimestamp *string       `json:"origEntryTimestamp"`
	Garage             float64       `json:"garage"`
	Maintenance        float64       `json:"maintenance"`
	Basement           []interface{} `json:"basement"`
	Sqft               string        `json:"sqft"`
	ListOfficeName     string        `json:"listOfficeName"`
}

// BoundingBox is a rectangular geographic area in degrees.
type BoundingBox struct {
	MinLat float64 `json:"minLat" validate:"gte=-90,lte=90"`
	MaxLat float64 `json:"maxLat" validate:"gte=-90,lte=90"`
	MinLng float64 `json:"minLng" validate:"gte=-180,lte=180"`
	MaxLng float64 `json:"maxLng" validate:"gte=-180,lte=180"`
}

// SearchQuery is the raw query string of a listing search.
type SearchQuery struct {
	Query  string `form:"query"`
	MinLat string `form:"minLat"`
	MaxLat string `form:"maxLat"`
	MinLng string `form:"minLng"`
	MaxLng string `form:"maxLng"`
}

// SearchParams selects listings by text or by area. Text wins when both are set.
type SearchParams struct {
	Query       string
	BoundingBox *BoundingBox
}

// SearchResponse is the body of a successful listing search.
type SearchResponse struct {
	Listings []NormalizedListing `json:"listings"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
