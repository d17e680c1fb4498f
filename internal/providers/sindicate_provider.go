package providers

import (
	"context"

	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
)

// SindicateProvider is the client for the sindicate partner service: the
// planet directory and the distance adjacency list. The remote serves full
// payloads; filtering happens here, client-side.
type SindicateProvider struct {
	baseProvider
	planetsPath   string
	distancesPath string
}

// NewSindicateProvider creates a sindicate client from the configuration.
func NewSindicateProvider(cfg *config.Config) *SindicateProvider {
	return &SindicateProvider{
		baseProvider:  newBaseProvider(cfg.SindicateBaseURL),
		planetsPath:   cfg.SindicatePlanets,
		distancesPath: cfg.SindicateDistances,
	}
}

// GetPlanets fetches the planet directory and applies the search options.
func (p *SindicateProvider) GetPlanets(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
	var response []dtos.SindicatePlanet
	if err := p.doGET(ctx, p.planetsPath, &response); err != nil {
		return nil, err
	}

	filtered := make([]dtos.SindicatePlanet, 0, len(response))
	for _, planet := range response {
		if opts != nil {
			if opts.Name != nil && planet.Name != *opts.Name {
				continue
			}
			if opts.Code != nil && planet.Code != *opts.Code {
				continue
			}
			if opts.Sector != nil && planet.Sector != *opts.Sector {
				continue
			}
		}
		filtered = append(filtered, planet)
	}

	return filtered, nil
}

// GetDistances fetches the adjacency list. Origin/destination are filter
// hints: when the origin key exists in the payload the map is narrowed to
// it, and its destinations to the requested code. Absent hints, or an
// origin the remote does not know, leave the payload untouched.
func (p *SindicateProvider) GetDistances(ctx context.Context, origin, destination *string) (dtos.SindicateDistanceMap, error) {
	var response dtos.SindicateDistanceMap
	if err := p.doGET(ctx, p.distancesPath, &response); err != nil {
		return nil, err
	}

	if origin == nil {
		return response, nil
	}
	destinations, ok := response[*origin]
	if !ok {
		return response, nil
	}

	if destination != nil {
		matched := make([]dtos.SindicateDistance, 0, 1)
		for _, d := range destinations {
			if d.Code == *destination {
				matched = append(matched, d)
			}
		}
		destinations = matched
	}

	return dtos.SindicateDistanceMap{*origin: destinations}, nil
}
