// Package tracking proxies the external carrier-tracking endpoint. The
// status mappers never depend on it; it only enriches the buyer timeline
// with courier checkpoints.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Response is the normalized payload from the carrier endpoint.
type Response struct {
	TrackingNumber string       `json:"tracking_number"`
	Carrier        string       `json:"carrier"`
	Status         string       `json:"status"`
	Checkpoints    []Checkpoint `json:"checkpoints"`
}

// Checkpoint is one courier scan event.
type Checkpoint struct {
	Time        time.Time `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// Client fetches carrier tracking data with a per-tracking-number cache.
// The cache overwrites on fetch and has no in-flight deduplication;
// concurrent requests for the same number may both hit the carrier.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *zap.Logger
}

// NewClient creates a carrier tracking client
func NewClient(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
		logger: logger,
	}
}

// Track returns the tracking response for a carrier and tracking number,
// serving from cache when fresh.
func (c *Client) Track(ctx context.Context, carrier, trackingNumber string) (*Response, error) {
	cacheKey := carrier + ":" + trackingNumber
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*Response), nil
	}

	endpoint := fmt.Sprintf("%s/track/%s/%s",
		c.baseURL, url.PathEscape(carrier), url.PathEscape(trackingNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Carrier tracking request failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("carrier tracking returned %d: %s", resp.StatusCode, string(body))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode tracking response: %w", err)
	}

	c.cache.Set(cacheKey, &result, gocache.DefaultExpiration)
	return &result, nil
}
