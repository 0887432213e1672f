// Package places implements the outbound client for the Google Places
// autocomplete API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"
	requestTimeout = 10 * time.Second
)

// Client calls the Places autocomplete endpoint. The zero value is not
// usable; construct with NewClient.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a Client. An empty apiKey is allowed at construction time;
// calls will fail until one is configured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// WithBaseURL overrides the upstream endpoint. Tests point this at a local
// httptest server.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type upstreamResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Predictions  []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

// Autocomplete queries the upstream API. The upstream status string is
// returned verbatim in the result; interpreting it is the caller's job.
func (c *Client) Autocomplete(ctx context.Context, input string) (*ports.PlacesResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key not configured", domain.ErrPlacesUpstream)
	}

	q := url.Values{}
	q.Set("input", input)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrPlacesUpstream, resp.StatusCode)
	}

	var body upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	result := &ports.PlacesResult{Status: body.Status}
	for _, p := range body.Predictions {
		result.Predictions = append(result.Predictions, ports.PlacePrediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return result, nil
}
