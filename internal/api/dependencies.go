package api

import (
	"gorm.io/gorm"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/db/repositories"
	"imperial/commercial-routes/internal/logging"
	"imperial/commercial-routes/internal/metrics"
	"imperial/commercial-routes/internal/providers"
	"imperial/commercial-routes/internal/services"
)

type Repositories struct {
	Planets   *repositories.PlanetRepository
	Distances *repositories.DistanceRepository
}

type Services struct {
	Cache          common.CacheInterface
	PlanetFinder   *services.PlanetFinderService
	DistanceFinder *services.DistanceFinderService
	AircraftFinder *services.AircraftFinderService
	Breakdown      *services.BreakdownRoutePriceService
	Routes         *services.CommercialRoutesService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories, partner providers and services.
func InitDependencies(cfg *config.Config, ormDB *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repo := &Repositories{
		Planets:   repositories.NewPlanetRepository(ormDB),
		Distances: repositories.NewDistanceRepository(ormDB),
	}

	cacheSvc, err := newCacheBackend(cfg)
	if err != nil {
		return nil, err
	}

	sindicate := providers.NewSindicateProvider(cfg)
	empire := providers.NewEmpireProvider(cfg, cacheSvc)

	rounder := services.NewConfigRounding(cfg)
	routeSvc := services.NewRouteService()
	securitySvc := services.NewSecurityPriceService()

	planetFinder := services.NewPlanetFinderService(repo.Planets, sindicate, empire, cfg.ListCachePolicy, metricsReg)
	distanceFinder := services.NewDistanceFinderService(repo.Distances, sindicate, cfg.ListCachePolicy, metricsReg)
	aircraftFinder := services.NewAircraftFinderService(empire, routeSvc)
	breakdown := services.NewBreakdownRoutePriceService(empire, securitySvc, rounder)

	routes := services.NewCommercialRoutesService(planetFinder, distanceFinder, aircraftFinder, breakdown, rounder)

	return &Dependencies{
		Repo: repo,
		Services: &Services{
			Cache:          cacheSvc,
			PlanetFinder:   planetFinder,
			DistanceFinder: distanceFinder,
			AircraftFinder: aircraftFinder,
			Breakdown:      breakdown,
			Routes:         routes,
		},
	}, nil
}

// newCacheBackend selects the partner payload cache: Redis when configured,
// in-memory otherwise.
func newCacheBackend(cfg *config.Config) (common.CacheInterface, error) {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		logging.Info("Partner payload cache using Redis")
		return redisCache, nil
	}

	logging.Info("Partner payload cache using in-memory store")
	return common.NewCacheService(cfg.ProviderCacheTTL, 10*cfg.ProviderCacheTTL), nil
}
