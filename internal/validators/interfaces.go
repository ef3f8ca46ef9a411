package validators

import (
	"homeinsight-listings/internal/models"
)

type ListingValidator interface {
	ValidateSearch(q models.SearchQuery) (models.SearchParams, error)
}
