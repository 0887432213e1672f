package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// PlacesService proxies autocomplete lookups to the geocoding provider with a
// short-lived cache in front.
type PlacesService struct {
	client ports.PlacesClient
	cache  ports.PlacesCache
	logger zerolog.Logger
}

// NewPlacesService builds the service. cache may be nil to disable caching.
func NewPlacesService(client ports.PlacesClient, cache ports.PlacesCache, logger zerolog.Logger) *PlacesService {
	return &PlacesService{client: client, cache: cache, logger: logger}
}

// Autocomplete returns suggestions for the given input. Upstream OK and
// ZERO_RESULTS are both success; ZERO_RESULTS yields an empty list. Any other
// upstream status surfaces as ErrPlacesUpstream.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]ports.PlacePrediction, error) {
	if input == "" {
		return nil, domain.ErrInvalidInput
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, input)
		if err != nil {
			s.logger.Warn().Err(err).Msg("places cache read failed")
		} else if cached != nil {
			return cached.Predictions, nil
		}
	}

	result, err := s.client.Autocomplete(ctx, input)
	if err != nil {
		return nil, err
	}

	switch result.Status {
	case ports.PlacesStatusOK:
	case ports.PlacesStatusZeroResult:
		result.Predictions = []ports.PlacePrediction{}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrPlacesUpstream, result.Status)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, input, result); err != nil {
			s.logger.Warn().Err(err).Msg("places cache write failed")
		}
	}
	return result.Predictions, nil
}
