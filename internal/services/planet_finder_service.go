package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/entities"
)

// PlanetFinderService resolves planets through the local store first and
// falls back to the sindicate directory, enriching freshly fetched planets
// with the empire spy report before persisting them.
type PlanetFinderService struct {
	store     PlanetStore
	directory PlanetDirectory
	spyReport RebelReport
	policy    string
	metrics   FinderMetrics
	group     singleflight.Group
}

// NewPlanetFinderService creates a planet finder. policy selects the list
// cache behaviour (config.CachePolicyTrustAnyHit or RefreshAlways); metrics
// may be nil.
func NewPlanetFinderService(
	store PlanetStore,
	directory PlanetDirectory,
	spyReport RebelReport,
	policy string,
	metrics FinderMetrics,
) *PlanetFinderService {
	return &PlanetFinderService{
		store:     store,
		directory: directory,
		spyReport: spyReport,
		policy:    policy,
		metrics:   metrics,
	}
}

// GetPlanet resolves a single planet. A store hit is returned unchanged; a
// miss triggers a directory fetch, spy report enrichment and an insert.
// A planet unknown to the directory is absence, not an error; a planet the
// spy report does not know is a data integrity failure.
func (s *PlanetFinderService) GetPlanet(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
	if opts == nil || (opts.Code == nil && opts.Name == nil) {
		return nil, fmt.Errorf("%w: planet search requires a code or a name", common.ErrInvalidArgument)
	}

	planet, err := s.store.FindOne(ctx, opts)
	if err != nil {
		return nil, err
	}
	if planet != nil {
		s.storeHit()
		return planet, nil
	}
	s.storeMiss()

	// Concurrent misses on the same filter share one fetch-and-insert.
	v, err, _ := s.group.Do(planetKey(opts), func() (interface{}, error) {
		return s.fetchAndPersist(ctx, opts)
	})
	if err != nil {
		return nil, err
	}

	planet, _ = v.(*entities.Planet)
	return planet, nil
}

func (s *PlanetFinderService) fetchAndPersist(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
	remote, err := s.directory.GetPlanets(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(remote) == 0 {
		return nil, nil
	}

	found := remote[0]
	planet := &entities.Planet{
		Name:   found.Name,
		Code:   found.Code,
		Sector: found.Sector,
	}

	rebels, err := s.spyReport.GetSpyReport(ctx, &models.RebelSearchOptions{Code: &found.Code})
	if err != nil {
		return nil, err
	}
	if len(rebels) == 0 {
		return nil, fmt.Errorf("%w: could not find rebel influence for the planet '%s' in the spy report",
			common.ErrDataIntegrity, found.Name)
	}
	planet.RebelInfluence = rebels[0].RebelInfluence

	if err := s.store.Insert(ctx, planet); err != nil {
		return nil, err
	}

	return planet, nil
}

// GetPlanets resolves a planet list. Under the trust-any-hit policy any
// non-empty store result short-circuits the remote refresh, even when it
// reflects an earlier narrower query; that staleness is accepted. On an
// empty store the full remote list is fetched, every planet is enriched
// (fail-fast on a missing spy entry) and the batch is persisted in one call.
func (s *PlanetFinderService) GetPlanets(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
	if s.policy != config.CachePolicyRefreshAlways {
		planets, err := s.store.FindAll(ctx, opts)
		if err != nil {
			return nil, err
		}
		if len(planets) > 0 {
			s.storeHit()
			return planets, nil
		}
	}
	s.storeMiss()

	remote, err := s.directory.GetPlanets(ctx, opts)
	if err != nil {
		return nil, err
	}

	planets := make([]entities.Planet, 0, len(remote))
	for _, found := range remote {
		code := found.Code
		rebels, err := s.spyReport.GetSpyReport(ctx, &models.RebelSearchOptions{Code: &code})
		if err != nil {
			return nil, err
		}
		if len(rebels) == 0 {
			return nil, fmt.Errorf("%w: could not find rebel influence for the planet with code '%s' in the spy report",
				common.ErrDataIntegrity, code)
		}

		planets = append(planets, entities.Planet{
			Name:           found.Name,
			Code:           found.Code,
			Sector:         found.Sector,
			RebelInfluence: rebels[0].RebelInfluence,
		})
	}

	if len(planets) > 0 {
		if err := s.store.InsertBatch(ctx, planets); err != nil {
			return nil, err
		}
	}

	return planets, nil
}

func (s *PlanetFinderService) storeHit() {
	if s.metrics != nil {
		s.metrics.StoreHit("planet")
	}
}

func (s *PlanetFinderService) storeMiss() {
	if s.metrics != nil {
		s.metrics.StoreMiss("planet")
	}
}

func planetKey(opts *models.PlanetSearchOptions) string {
	parts := make([]string, 0, 2)
	if opts.Code != nil {
		parts = append(parts, "code="+*opts.Code)
	}
	if opts.Name != nil {
		parts = append(parts, "name="+*opts.Name)
	}
	return "planet:" + strings.Join(parts, ",")
}
