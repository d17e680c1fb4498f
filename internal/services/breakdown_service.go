package services

import (
	"context"
	"fmt"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
	"imperial/commercial-routes/internal/models/entities"
)

// BreakdownRoutePriceService computes the full price of a route: fuel per
// lunar day across the sectors involved, multiplied by route length and the
// security price, with the tax breakdown reported alongside.
type BreakdownRoutePriceService struct {
	prices   FuelPriceProvider
	security *SecurityPriceService
	rounder  RoundingPolicy
}

// NewBreakdownRoutePriceService creates a breakdown service.
func NewBreakdownRoutePriceService(
	prices FuelPriceProvider,
	security *SecurityPriceService,
	rounder RoundingPolicy,
) *BreakdownRoutePriceService {
	return &BreakdownRoutePriceService{
		prices:   prices,
		security: security,
		rounder:  rounder,
	}
}

// CalculateBreakdown prices the route for the given day of week. A missing
// fuel price for either sector is a bad request naming the planet. Every
// monetary figure in the result is rounded independently by the shared
// policy.
func (s *BreakdownRoutePriceService) CalculateBreakdown(
	ctx context.Context,
	dayOfWeek int,
	origin, destination *entities.Planet,
	distance *entities.Distance,
) (*dtos.BreakdownRoutePrice, error) {
	if err := requirePlanets(origin, destination); err != nil {
		return nil, err
	}
	if distance == nil {
		return nil, fmt.Errorf("%w: distance is required", common.ErrInvalidArgument)
	}

	originPrices, err := s.prices.GetFuelPrices(ctx, &models.FuelPriceSearchOptions{
		DayOfWeek: &dayOfWeek,
		Sector:    &origin.Sector,
	})
	if err != nil {
		return nil, err
	}
	if len(originPrices) == 0 {
		return nil, common.NewBadRequestError(
			fmt.Sprintf("Could not find a price for the origin planet '%s' in the empire service", origin.Name))
	}

	pricePerLunarDay := originPrices[0].PricePerLunarDay

	if origin.Sector != destination.Sector {
		destinationPrices, err := s.prices.GetFuelPrices(ctx, &models.FuelPriceSearchOptions{
			DayOfWeek: &dayOfWeek,
			Sector:    &destination.Sector,
		})
		if err != nil {
			return nil, err
		}
		if len(destinationPrices) == 0 {
			return nil, common.NewBadRequestError(
				fmt.Sprintf("Could not find a price for the planet '%s' in the empire service", destination.Name))
		}

		pricePerLunarDay = pricePerLunarDay.Add(destinationPrices[0].PricePerLunarDay)
	}

	securityPrice, err := s.security.SecurityPrice(origin, destination)
	if err != nil {
		return nil, err
	}
	eliteTax, err := s.security.EliteTax(origin, destination)
	if err != nil {
		return nil, err
	}

	totalAmount := distance.LunarDays().Mul(pricePerLunarDay).Mul(securityPrice)

	return &dtos.BreakdownRoutePrice{
		TotalAmount:      s.rounder.Round(totalAmount),
		PricePerLunarDay: s.rounder.Round(pricePerLunarDay),
		Tax: dtos.RouteTax{
			OriginDefenseCost:      s.rounder.Round(origin.DefenseCost()),
			DestinationDefenseCost: s.rounder.Round(destination.DefenseCost()),
			EliteDefenseCost:       s.rounder.Round(eliteTax),
		},
	}, nil
}
