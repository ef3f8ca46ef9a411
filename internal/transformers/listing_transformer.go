package transformers

import (
	"fmt"
	"math"
	"time"

	"homeinsight-listings/internal/models"
)

const day = 24 * time.Hour

// Output field aliases in precedence order.
var (
	priceKeys       = []string{"ListPrice", "price"}
	cityKeys        = []string{"City", "Municipality"}
	addressKeys     = []string{"Address", "address", "UnparsedAddress"}
	maintenanceKeys = []string{"AssociationFee", "MonthlyMaintenance"}
	sqftKeys        = []string{"LivingArea", "ApproxSquareFootage"}
	officeKeys      = []string{"ListOfficeName", "ListingOfficeName", "BrokerageName"}
	latitudeKeys    = []string{"latitude", "lat", "Latitude"}
	longitudeKeys   = []string{"longitude", "lng", "Longitude"}
)

type listingTransformer struct {
	addrTrans AddressTransformer
	now       func() time.Time
}

func NewListingTransformer(addrTrans AddressTransformer) ListingTransformer {
	return NewListingTransformerWithClock(addrTrans, time.Now)
}

func NewListingTransformerWithClock(addrTrans AddressTransformer, now func() time.Time) ListingTransformer {
	if addrTrans == nil {
		addrTrans = NewAddressTransformer()
	}
	return &listingTransformer{addrTrans: addrTrans, now: now}
}

// Normalize maps a stored document to the client view model. Every output
// field has a default, so the only failure is a missing document.
func (t *listingTransformer) Normalize(raw models.StoredListing) (*models.NormalizedListing, error) {
	if raw == nil {
		return nil, fmt.Errorf("listing document is nil")
	}
	doc := map[string]interface{}(raw)
	now := t.now()

	lat, lng := coordinates(doc)
	fullAddress := firstString(doc, "Unknown", addressKeys...)

	listing := &models.NormalizedListing{
		ID:             documentID(doc),
		ListingKey:     firstString(doc, "", "ListingKey"),
		MLSNumber:      firstString(doc, "N/A", "ListingKey"),
		Price:          firstNumber(doc, priceKeys...),
		Type:           firstString(doc, "For Sale", "TransactionType"),
		Status:         firstString(doc, "Active", "MlsStatus"),
		PropertyType:   firstString(doc, "Other", "PropertySubType"),
		Beds:           firstNumber(doc, "BedroomsTotal"),
		Baths:          firstNumber(doc, "BathroomsTotalInteger"),
		Parking:        firstNumber(doc, "ParkingSpaces"),
		Lat:            lat,
		Lng:            lng,
		Address:        t.addrTrans.ShortAddress(fullAddress),
		City:           firstString(doc, "", cityKeys...),
		FullAddress:    fullAddress,
		Description:    firstString(doc, "", "PublicRemarks"),
		Taxes:          firstNumber(doc, "TaxAnnualAmount"),
		Cooling:        listField(doc, "Cooling"),
		Heating:        listField(doc, "Heating"),
		Rooms:          listField(doc, "RoomDetails"),
		Garage:         firstNumber(doc, "GarageSpaces"),
		Maintenance:    firstNumber(doc, maintenanceKeys...),
		Basement:       listField(doc, "Basement"),
		Sqft:           firstString(doc, "", sqftKeys...),
		ListOfficeName: firstString(doc, "", officeKeys...),
	}

	entry := now
	if v, ok := doc["OriginalEntryTimestamp"]; ok {
		if ts, ok := toTime(v); ok {
			entry = ts
			iso := ts.UTC().Format("2006-01-02T15:04:05.000Z07:00")
			listing.OrigEntryTimestamp = &iso
		}
	}
	listing.DaysOnMarket = DaysBetween(entry, now)

	return listing, nil
}

// DaysBetween is the ceiling of the absolute elapsed time in whole days.
func DaysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

// coordinates prefers GeoJSON location.coordinates ([lng, lat]). When that
// array exists at all, even empty, the flat fields are not consulted.
func coordinates(doc map[string]interface{}) (lat, lng float64) {
	if v, ok := lookup(doc, "location.coordinates"); ok {
		if coords, ok := asList(v); ok && coords != nil {
			if len(coords) > 0 {
				lng, _ = toNumber(coords[0])
			}
			if len(coords) > 1 {
				lat, _ = toNumber(coords[1])
			}
			return lat, lng
		}
	}
	return firstNumber(doc, latitudeKeys...), firstNumber(doc, longitudeKeys...)
}

func documentID(doc map[string]interface{}) string {
	v, ok := doc["_id"]
	if !ok || v == nil {
		return ""
	}
	return toString(v)
}
