package handlers

import (
	"context"
	goerrors "errors"
	"net/http"
	"strconv"
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/utils"

	"github.com/gin-gonic/gin"
)

// PhotoResolver is satisfied by *services.ImageService.
type PhotoResolver interface {
	ResolvePhotoURL(ctx context.Context, listingKey string, index int) (string, error)
	FallbackURL() string
}

type ImageHandler struct {
	images PhotoResolver
}

func NewImageHandler(images PhotoResolver) *ImageHandler {
	return &ImageHandler{images: images}
}

// RedirectToPhoto godoc
// @Summary Redirect to a listing photo
// @Description Resolves the large photo at the given position and redirects to it.
// @Description Listings without a photo at that position redirect to a placeholder.
// @Tags Listings
// @Param key path string true "Listing key"
// @Param index query int false "Photo position, 0-based" default(0)
// @Success 307
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Failure 502 {string} string
// @Router /image/{key} [get]
func (h *ImageHandler) RedirectToPhoto(c *gin.Context) {
	key := c.Param("key")
	if strings.TrimSpace(key) == "" {
		c.String(http.StatusBadRequest, "Missing key")
		return
	}
	index := parseIndex(c.Query("index"))

	url, err := h.images.ResolvePhotoURL(c.Request.Context(), key, index)
	if goerrors.Is(err, errors.ErrMediaNotFound) {
		c.Redirect(http.StatusTemporaryRedirect, h.images.FallbackURL())
		return
	}
	if err != nil {
		appErr := utils.LogAndMapError(err, "resolve_photo", "key", key, "index", index)
		c.String(appErr.HTTPStatus, appErr.UserMessage)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// parseIndex reads a leading base-10 integer, so "3px" is 3. Anything
// unparseable or negative is 0.
func parseIndex(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
