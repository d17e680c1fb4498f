package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/models/entities"
)

// eliteTaxThreshold is the combined defense cost above which the elite
// stormtrooper surcharge applies.
var eliteTaxThreshold = decimal.NewFromFloat(0.4)

// SecurityPriceService computes the per-route security surcharges from the
// planets' defense costs.
type SecurityPriceService struct{}

func NewSecurityPriceService() *SecurityPriceService {
	return &SecurityPriceService{}
}

// EliteTax is max(0, defenseCost(origin) + defenseCost(destination) - 0.4).
func (s *SecurityPriceService) EliteTax(origin, destination *entities.Planet) (decimal.Decimal, error) {
	if err := requirePlanets(origin, destination); err != nil {
		return decimal.Zero, err
	}

	combined := origin.DefenseCost().Add(destination.DefenseCost())
	if combined.GreaterThan(eliteTaxThreshold) {
		return combined.Sub(eliteTaxThreshold), nil
	}
	return decimal.Zero, nil
}

// SecurityPrice is the sum of both defense costs plus the elite tax.
func (s *SecurityPriceService) SecurityPrice(origin, destination *entities.Planet) (decimal.Decimal, error) {
	tax, err := s.EliteTax(origin, destination)
	if err != nil {
		return decimal.Zero, err
	}

	return origin.DefenseCost().Add(destination.DefenseCost()).Add(tax), nil
}

func requirePlanets(origin, destination *entities.Planet) error {
	if origin == nil {
		return fmt.Errorf("%w: origin planet is required", common.ErrInvalidArgument)
	}
	if destination == nil {
		return fmt.Errorf("%w: destination planet is required", common.ErrInvalidArgument)
	}
	return nil
}
