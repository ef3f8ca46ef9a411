package validators

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"

	"github.com/go-playground/validator/v10"
)

type listingValidator struct {
	validate *validator.Validate
}

func NewListingValidator() ListingValidator {
	return &listingValidator{validate: validator.New()}
}

// ValidateSearch turns raw query values into search parameters. The box is
// only read when there is no text query, and only when all four bounds are
// present; a partial box means browse.
func (v *listingValidator) ValidateSearch(q models.SearchQuery) (models.SearchParams, error) {
	params := models.SearchParams{Query: strings.TrimSpace(q.Query)}
	if params.Query != "" {
		return params, nil
	}

	raw := []string{q.MinLat, q.MaxLat, q.MinLng, q.MaxLng}
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			return params, nil
		}
	}

	names := []string{"minLat", "maxLat", "minLng", "maxLng"}
	values := make([]float64, len(raw))
	for i, s := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return params, fmt.Errorf("%w: %s must be a finite number", errors.ErrInvalidParameters, names[i])
		}
		values[i] = f
	}

	box := &models.BoundingBox{MinLat: values[0], MaxLat: values[1], MinLng: values[2], MaxLng: values[3]}
	if err := v.validate.Struct(box); err != nil {
		return params, fmt.Errorf("%w: %v", errors.ErrInvalidParameters, err)
	}
	params.BoundingBox = box
	return params, nil
}
