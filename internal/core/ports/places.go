package ports

import "context"

// Upstream statuses the Places API reports that we treat as success.
const (
	PlacesStatusOK         = "OK"
	PlacesStatusZeroResult = "ZERO_RESULTS"
)

// PlacePrediction is a single autocomplete suggestion.
type PlacePrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// PlacesResult is the upstream autocomplete response: the raw upstream status
// plus the predictions, which are only meaningful when Status is OK.
type PlacesResult struct {
	Status      string            `json:"status"`
	Predictions []PlacePrediction `json:"predictions"`
}

// PlacesClient talks to the upstream geocoding provider.
type PlacesClient interface {
	Autocomplete(ctx context.Context, input string) (*PlacesResult, error)
}

// PlacesCache stores recent autocomplete results. Get returns (nil, nil) on
// a miss.
type PlacesCache interface {
	Get(ctx context.Context, input string) (*PlacesResult, error)
	Set(ctx context.Context, input string, result *PlacesResult) error
}

// PlacesService proxies autocomplete lookups, applying caching and upstream
// status mapping. OK and ZERO_RESULTS are success (the latter with an empty
// list); any other upstream status is an error.
type PlacesService interface {
	Autocomplete(ctx context.Context, input string) ([]PlacePrediction, error)
}
