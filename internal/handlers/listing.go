package handlers

import (
	"context"
	"fmt"
	"net/http"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/validators"

	"github.com/gin-gonic/gin"
)

// ListingSearcher is satisfied by *services.ListingSearchService.
type ListingSearcher interface {
	Search(ctx context.Context, params models.SearchParams) ([]models.NormalizedListing, error)
}

type ListingHandler struct {
	searchService ListingSearcher
	validator     validators.ListingValidator
}

func NewListingHandler(searchService ListingSearcher, validator validators.ListingValidator) *ListingHandler {
	return &ListingHandler{searchService: searchService, validator: validator}
}

// SearchListings godoc
// @Summary Search listings
// @Description Free-text search over listing key, address and city, or an area search by bounding box.
// @Description With neither, returns a small browse sample.
// @Tags Listings
// @Produce json
// @Param query query string false "Free-text search; wins over the bounding box"
// @Param minLat query number false "South edge"
// @Param maxLat query number false "North edge"
// @Param minLng query number false "West edge"
// @Param maxLng query number false "East edge"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /listings [get]
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(fmt.Errorf("%w: %v", errors.ErrInvalidParameters, err))
		return
	}

	params, err := h.validator.ValidateSearch(q)
	if err != nil {
		c.Error(err)
		return
	}

	listings, err := h.searchService.Search(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SearchResponse{Listings: listings})
}
