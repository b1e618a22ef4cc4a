// Package client is an HTTP client for the marketplace API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"marketplace-api/models"
)

const (
	// DefaultBaseURL is where the marketplace API listens by default.
	DefaultBaseURL = "http://localhost:8000"

	listingsPath = "/api/marketplace/listings"
	requestsPath = "/api/marketplace/requests"
	healthPath   = "/health"
)

// Client is an HTTP client for the marketplace API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new marketplace API client.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
	}
}

// WithBaseURL sets a custom base URL for the client.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Health checks that the API is reachable.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.getJSON(ctx, healthPath, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FetchListings searches listings. A blank query and an empty or "All"
// category are not sent.
func (c *Client) FetchListings(ctx context.Context, query, category string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.getJSON(ctx, listingsPath, listingParams(query, category), &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// FetchRequests fetches every buyer request.
func (c *Client) FetchRequests(ctx context.Context) ([]models.Request, error) {
	var requests []models.Request
	if err := c.getJSON(ctx, requestsPath, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func listingParams(query, category string) url.Values {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}
	if category != "" && category != "All" {
		params.Set("category", category)
	}
	return params
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("client: creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decoding response: %w", err)
	}
	return nil
}
