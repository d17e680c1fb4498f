package services

import (
	"context"
	"fmt"
	"sort"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/models/dtos"
	"imperial/commercial-routes/internal/models/entities"
)

// AircraftFinderService selects the cheapest-crew aircraft type that covers
// a route's length and threat level. Stateless aside from the fleet fetch.
type AircraftFinderService struct {
	fleet FleetProvider
	route *RouteService
}

// NewAircraftFinderService creates an aircraft finder.
func NewAircraftFinderService(fleet FleetProvider, route *RouteService) *AircraftFinderService {
	return &AircraftFinderService{
		fleet: fleet,
		route: route,
	}
}

// GetOptimalAircraft returns the chosen fleet instance, or nil when the
// fleet payload is incomplete, no type qualifies, or no instance of the
// chosen type exists. The empire fleet data is authoritative, so its
// absence is not an error.
//
// A type qualifies when maxDistance covers the route's lunar years and
// supportedAttack covers the combined rebel influence. Among qualifiers the
// minimum crew wins, ties broken by type name; among instances of the
// winning type the fleet list order decides.
func (s *AircraftFinderService) GetOptimalAircraft(
	ctx context.Context,
	origin, destination *entities.Planet,
	distance *entities.Distance,
) (*dtos.Aircraft, error) {
	if distance == nil {
		return nil, fmt.Errorf("%w: distance is required", common.ErrInvalidArgument)
	}

	totalInfluence, err := s.route.TotalRebelInfluence(origin, destination)
	if err != nil {
		return nil, err
	}

	fleet, err := s.fleet.GetAircrafts(ctx)
	if err != nil {
		return nil, err
	}
	if fleet == nil || fleet.Aircrafts == nil || fleet.AircraftsTypes == nil {
		return nil, nil
	}

	type candidate struct {
		name string
		crew int
	}
	candidates := make([]candidate, 0, len(fleet.AircraftsTypes))
	for name, spec := range fleet.AircraftsTypes {
		if spec.MaxDistance.GreaterThanOrEqual(distance.LunarYears) && spec.SupportedAttack >= totalInfluence {
			candidates = append(candidates, candidate{name: name, crew: spec.Crew})
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].crew != candidates[j].crew {
			return candidates[i].crew < candidates[j].crew
		}
		return candidates[i].name < candidates[j].name
	})
	chosenType := candidates[0].name

	for i := range fleet.Aircrafts {
		if fleet.Aircrafts[i].Type == chosenType {
			aircraft := fleet.Aircrafts[i]
			return &aircraft, nil
		}
	}

	return nil, nil
}
