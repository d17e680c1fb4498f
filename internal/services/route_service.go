package services

import (
	"fmt"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/models/entities"
)

// RouteService holds the route-level domain rules.
type RouteService struct{}

func NewRouteService() *RouteService {
	return &RouteService{}
}

// TotalRebelInfluence is the combined threat of a route: the sum of both
// planets' rebel influence.
func (s *RouteService) TotalRebelInfluence(origin, destination *entities.Planet) (int, error) {
	if origin == nil {
		return 0, fmt.Errorf("%w: origin planet is required", common.ErrInvalidArgument)
	}
	if destination == nil {
		return 0, fmt.Errorf("%w: destination planet is required", common.ErrInvalidArgument)
	}

	return origin.RebelInfluence + destination.RebelInfluence, nil
}
