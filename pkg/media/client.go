package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/pkg/metrics"

	"github.com/hashicorp/go-retryablehttp"
)

const maxResponseBytes = 1 << 20

// Options configure the media catalog client. Zero values take defaults.
type Options struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	RetryMax int
}

// Client looks up listing photos in the RESO OData media catalog.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

type mediaItem struct {
	MediaURL string `json:"MediaURL"`
	Order    *int   `json:"Order,omitempty"`
}

type mediaResponse struct {
	Value []mediaItem `json:"value"`
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = opts.RetryMax
	rc.HTTPClient.Timeout = opts.Timeout
	rc.CheckRetry = retryConnectionErrors
	rc.Logger = leveledLogger{}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    rc,
	}
}

// retryConnectionErrors retries transport failures only. Any HTTP status,
// including 5xx and 429, is returned to the caller as is.
func retryConnectionErrors(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err == nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// LookupPhoto returns the URL of the large photo at position index (0-based,
// by catalog order) for the listing. A listing with fewer photos yields
// errors.ErrMediaNotFound.
func (c *Client) LookupPhoto(ctx context.Context, listingKey string, index int) (string, error) {
	if c.token == "" {
		metrics.MediaRequestsTotal.WithLabelValues("auth_error").Inc()
		return "", fmt.Errorf("%w: no token configured", errors.ErrUpstreamAuth)
	}
	if index < 0 {
		index = 0
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.photoURL(listingKey, index), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build media request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.MediaRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MediaRequestsTotal.WithLabelValues("transport_error").Inc()
		return "", fmt.Errorf("media request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		metrics.MediaRequestsTotal.WithLabelValues("auth_error").Inc()
		return "", fmt.Errorf("%w: status %d", errors.ErrUpstreamAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.MediaRequestsTotal.WithLabelValues("upstream_error").Inc()
		return "", &errors.UpstreamMediaError{Status: resp.StatusCode}
	}

	var body mediaResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		metrics.MediaRequestsTotal.WithLabelValues("decode_error").Inc()
		return "", fmt.Errorf("failed to decode media response: %w", err)
	}
	if len(body.Value) == 0 || body.Value[0].MediaURL == "" {
		metrics.MediaRequestsTotal.WithLabelValues("not_found").Inc()
		return "", errors.ErrMediaNotFound
	}

	metrics.MediaRequestsTotal.WithLabelValues("found").Inc()
	return body.Value[0].MediaURL, nil
}

func (c *Client) photoURL(listingKey string, index int) string {
	filter := fmt.Sprintf("ResourceName eq 'Property' and ResourceRecordKey eq '%s' and ImageSizeDescription eq 'Large'",
		escapeLiteral(listingKey))
	params := []struct{ key, value string }{
		{"$filter", filter},
		{"$orderby", "Order"},
		{"$skip", strconv.Itoa(index)},
		{"$top", "1"},
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.key+"="+escapeQueryValue(p.value))
	}
	return c.baseURL + "/odata/Media?" + strings.Join(parts, "&")
}

// escapeLiteral doubles single quotes inside an OData string literal.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// escapeQueryValue encodes spaces as %20; OData servers do not all read '+'.
func escapeQueryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
