package services

import (
	"context"
	"fmt"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
	"imperial/commercial-routes/internal/models/entities"
)

// PlanetFinder resolves planets through the read-through cache.
type PlanetFinder interface {
	GetPlanet(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error)
	GetPlanets(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error)
}

// DistanceFinder resolves distances through the read-through cache.
type DistanceFinder interface {
	GetDistance(ctx context.Context, origin, destination string) (*entities.Distance, error)
	GetDistances(ctx context.Context, opts *models.DistanceSearchOptions) ([]entities.Distance, error)
}

// AircraftFinder selects the optimal aircraft for a resolved route.
type AircraftFinder interface {
	GetOptimalAircraft(ctx context.Context, origin, destination *entities.Planet, distance *entities.Distance) (*dtos.Aircraft, error)
}

// RoutePricer prices a resolved route.
type RoutePricer interface {
	CalculateBreakdown(ctx context.Context, dayOfWeek int, origin, destination *entities.Planet, distance *entities.Distance) (*dtos.BreakdownRoutePrice, error)
}

// CommercialRoutesService composes the finders and the pricing engine to
// serve the three public route operations.
type CommercialRoutesService struct {
	planets   PlanetFinder
	distances DistanceFinder
	aircrafts AircraftFinder
	pricer    RoutePricer
	rounder   RoundingPolicy
}

// NewCommercialRoutesService creates the orchestrator.
func NewCommercialRoutesService(
	planets PlanetFinder,
	distances DistanceFinder,
	aircrafts AircraftFinder,
	pricer RoutePricer,
	rounder RoundingPolicy,
) *CommercialRoutesService {
	return &CommercialRoutesService{
		planets:   planets,
		distances: distances,
		aircrafts: aircrafts,
		pricer:    pricer,
		rounder:   rounder,
	}
}

// GetCommercialRoutes lists every known route, replacing planet codes with
// display names. A code that resolves to no planet yields a null name, and
// empty inputs yield an empty list, never an error.
func (s *CommercialRoutesService) GetCommercialRoutes(ctx context.Context) ([]dtos.CommercialRoute, error) {
	distances, err := s.distances.GetDistances(ctx, nil)
	if err != nil {
		return nil, err
	}
	planets, err := s.planets.GetPlanets(ctx, nil)
	if err != nil {
		return nil, err
	}

	nameByCode := make(map[string]string, len(planets))
	for i := range planets {
		nameByCode[planets[i].Code] = planets[i].Name
	}

	routes := make([]dtos.CommercialRoute, 0, len(distances))
	for i := range distances {
		routes = append(routes, dtos.CommercialRoute{
			Origin:      lookupName(nameByCode, distances[i].Origin),
			Destination: lookupName(nameByCode, distances[i].Destination),
			Distance:    s.rounder.Round(distances[i].LunarYears),
		})
	}

	return routes, nil
}

// GetRoutePriceBreakdown resolves the requested planets and distance, then
// delegates to the pricing engine. DayOfWeek must already be set; the
// transport layer defaults it.
func (s *CommercialRoutesService) GetRoutePriceBreakdown(ctx context.Context, request *dtos.RouteRequest) (*dtos.BreakdownRoutePrice, error) {
	if request == nil || request.DayOfWeek == nil {
		return nil, fmt.Errorf("%w: route request with day of week is required", common.ErrInvalidArgument)
	}

	origin, destination, distance, err := s.resolveRoute(ctx, request)
	if err != nil {
		return nil, err
	}

	return s.pricer.CalculateBreakdown(ctx, *request.DayOfWeek, origin, destination, distance)
}

// GetOptimalAircraft resolves the requested planets and distance, then asks
// the aircraft finder. No qualifying aircraft is a descriptive payload, not
// an error.
func (s *CommercialRoutesService) GetOptimalAircraft(ctx context.Context, request *dtos.RouteRequest) (*dtos.AircraftResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: route request is required", common.ErrInvalidArgument)
	}

	origin, destination, distance, err := s.resolveRoute(ctx, request)
	if err != nil {
		return nil, err
	}

	aircraft, err := s.aircrafts.GetOptimalAircraft(ctx, origin, destination, distance)
	if err != nil {
		return nil, err
	}

	if aircraft == nil {
		return &dtos.AircraftResponse{
			Message: fmt.Sprintf("Aircraft not found for the given route '<%s-%s>'", request.Origin, request.Destination),
		}, nil
	}

	return &dtos.AircraftResponse{
		Reference: aircraft.Reference,
		Type:      aircraft.Type,
		Message:   fmt.Sprintf("Optimal aircraft '%s' found for the given route '<%s-%s>'", aircraft.Type, request.Origin, request.Destination),
	}, nil
}

func (s *CommercialRoutesService) resolveRoute(ctx context.Context, request *dtos.RouteRequest) (*entities.Planet, *entities.Planet, *entities.Distance, error) {
	origin, err := s.planetByName(ctx, request.Origin)
	if err != nil {
		return nil, nil, nil, err
	}
	destination, err := s.planetByName(ctx, request.Destination)
	if err != nil {
		return nil, nil, nil, err
	}

	distance, err := s.distances.GetDistance(ctx, origin.Code, destination.Code)
	if err != nil {
		return nil, nil, nil, err
	}
	if distance == nil {
		return nil, nil, nil, common.NewBadRequestError(
			fmt.Sprintf("Destination '<%s-%s>' not found.", origin.Code, destination.Code))
	}

	return origin, destination, distance, nil
}

func (s *CommercialRoutesService) planetByName(ctx context.Context, name string) (*entities.Planet, error) {
	planet, err := s.planets.GetPlanet(ctx, &models.PlanetSearchOptions{Name: &name})
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, common.NewBadRequestError(fmt.Sprintf("Planet '%s' not found.", name))
	}
	return planet, nil
}

func lookupName(nameByCode map[string]string, code string) *string {
	if name, ok := nameByCode[code]; ok {
		return &name
	}
	return nil
}
