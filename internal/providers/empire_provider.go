package providers

import (
	"context"
	"time"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
)

const (
	cacheKeyAircrafts  = "empire:aircrafts"
	cacheKeyFuelPrices = "empire:fuel-prices"
)

// EmpireProvider is the client for the empire partner service: the spy
// report, the fleet catalog and the fuel price list. The fleet and price
// payloads change slowly, so they are held in the cache between fetches;
// the spy report is always fetched fresh.
type EmpireProvider struct {
	baseProvider
	spyReportPath string
	aircraftsPath string
	pricesPath    string

	cache common.CacheInterface
	ttl   time.Duration
}

// NewEmpireProvider creates an empire client from the configuration.
func NewEmpireProvider(cfg *config.Config, cache common.CacheInterface) *EmpireProvider {
	return &EmpireProvider{
		baseProvider:  newBaseProvider(cfg.EmpireBaseURL),
		spyReportPath: cfg.EmpireSpyReport,
		aircraftsPath: cfg.EmpireAircrafts,
		pricesPath:    cfg.EmpirePrices,
		cache:         cache,
		ttl:           cfg.ProviderCacheTTL,
	}
}

// GetSpyReport fetches the rebel influence report and applies the search
// options.
func (p *EmpireProvider) GetSpyReport(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
	var response []dtos.Rebel
	if err := p.doGET(ctx, p.spyReportPath, &response); err != nil {
		return nil, err
	}

	filtered := make([]dtos.Rebel, 0, len(response))
	for _, rebel := range response {
		if opts != nil {
			if opts.Code != nil && rebel.Code != *opts.Code {
				continue
			}
			if opts.RebelInfluence != nil && rebel.RebelInfluence != *opts.RebelInfluence {
				continue
			}
		}
		filtered = append(filtered, rebel)
	}

	return filtered, nil
}

// GetAircrafts fetches the fleet catalog plus instance list, reading
// through the cache.
func (p *EmpireProvider) GetAircrafts(ctx context.Context) (*dtos.EmpireAircraft, error) {
	if cached, found := p.cache.Get(cacheKeyAircrafts); found {
		// A Redis-backed cache yields a generic value after the JSON
		// round-trip; anything not our type counts as a miss.
		if fleet, ok := cached.(*dtos.EmpireAircraft); ok {
			return fleet, nil
		}
	}

	var response dtos.EmpireAircraft
	if err := p.doGET(ctx, p.aircraftsPath, &response); err != nil {
		return nil, err
	}

	p.cache.Set(cacheKeyAircrafts, &response, p.ttl)
	return &response, nil
}

// GetFuelPrices fetches the fuel price list, reading through the cache, and
// applies the search options to the full payload.
func (p *EmpireProvider) GetFuelPrices(ctx context.Context, opts *models.FuelPriceSearchOptions) ([]dtos.FuelPrice, error) {
	var response []dtos.FuelPrice

	if cached, found := p.cache.Get(cacheKeyFuelPrices); found {
		if prices, ok := cached.([]dtos.FuelPrice); ok {
			response = prices
		}
	}
	if response == nil {
		if err := p.doGET(ctx, p.pricesPath, &response); err != nil {
			return nil, err
		}
		p.cache.Set(cacheKeyFuelPrices, response, p.ttl)
	}

	filtered := make([]dtos.FuelPrice, 0, len(response))
	for _, price := range response {
		if opts != nil {
			if opts.Sector != nil && price.Sector != *opts.Sector {
				continue
			}
			if opts.PricePerLunarDay != nil && !price.PricePerLunarDay.Equal(*opts.PricePerLunarDay) {
				continue
			}
			if opts.DayOfWeek != nil && price.DayOfWeek != *opts.DayOfWeek {
				continue
			}
		}
		filtered = append(filtered, price)
	}

	return filtered, nil
}
