package services

import (
	"context"

	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
	"imperial/commercial-routes/internal/models/entities"
)

// Capability interfaces over the collaborators the services consume. Each
// has exactly one production implementation (repositories, providers) and a
// function-field mock in the tests.

// PlanetStore is the persistent side of the planet read-through cache.
type PlanetStore interface {
	FindOne(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error)
	FindAll(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error)
	Insert(ctx context.Context, planet *entities.Planet) error
	InsertBatch(ctx context.Context, planets []entities.Planet) error
}

// DistanceStore is the persistent side of the distance read-through cache.
type DistanceStore interface {
	FindOne(ctx context.Context, opts *models.DistanceSearchOptions) (*entities.Distance, error)
	FindAll(ctx context.Context, opts *models.DistanceSearchOptions) ([]entities.Distance, error)
	Insert(ctx context.Context, distance *entities.Distance) error
	InsertBatch(ctx context.Context, distances []entities.Distance) error
}

// PlanetDirectory is the sindicate planet listing.
type PlanetDirectory interface {
	GetPlanets(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error)
}

// DistanceDirectory is the sindicate distance adjacency list.
type DistanceDirectory interface {
	GetDistances(ctx context.Context, origin, destination *string) (dtos.SindicateDistanceMap, error)
}

// RebelReport is the empire spy report.
type RebelReport interface {
	GetSpyReport(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error)
}

// FleetProvider is the empire aircraft catalog plus instance list.
type FleetProvider interface {
	GetAircrafts(ctx context.Context) (*dtos.EmpireAircraft, error)
}

// FuelPriceProvider is the empire fuel price list.
type FuelPriceProvider interface {
	GetFuelPrices(ctx context.Context, opts *models.FuelPriceSearchOptions) ([]dtos.FuelPrice, error)
}

// FinderMetrics receives store hit/miss events from the finders. A nil
// implementation is allowed.
type FinderMetrics interface {
	StoreHit(entity string)
	StoreMiss(entity string)
}
