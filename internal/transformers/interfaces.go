package transformers

import (
	"homeinsight-listings/internal/models"
)

type ListingTransformer interface {
	Normalize(raw models.StoredListing) (*models.NormalizedListing, error)
}

type AddressTransformer interface {
	ShortAddress(full string) string
}
