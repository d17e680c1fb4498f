package services

import (
	"context"
	"errors"
	"testing"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/dtos"
	"imperial/commercial-routes/internal/models/entities"
)

// Mock collaborators with call counters

type mockPlanetStore struct {
	findOneFunc     func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error)
	findAllFunc     func(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error)
	insertFunc      func(ctx context.Context, planet *entities.Planet) error
	insertBatchFunc func(ctx context.Context, planets []entities.Planet) error
	insertCalls     int
	batchCalls      int
}

func (m *mockPlanetStore) FindOne(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
	return m.findOneFunc(ctx, opts)
}

func (m *mockPlanetStore) FindAll(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
	return m.findAllFunc(ctx, opts)
}

func (m *mockPlanetStore) Insert(ctx context.Context, planet *entities.Planet) error {
	m.insertCalls++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, planet)
	}
	return nil
}

func (m *mockPlanetStore) InsertBatch(ctx context.Context, planets []entities.Planet) error {
	m.batchCalls++
	if m.insertBatchFunc != nil {
		return m.insertBatchFunc(ctx, planets)
	}
	return nil
}

type mockPlanetDirectory struct {
	getPlanetsFunc func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error)
	calls          int
}

func (m *mockPlanetDirectory) GetPlanets(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
	m.calls++
	return m.getPlanetsFunc(ctx, opts)
}

type mockRebelReport struct {
	getSpyReportFunc func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error)
	calls            int
}

func (m *mockRebelReport) GetSpyReport(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
	m.calls++
	return m.getSpyReportFunc(ctx, opts)
}

func strPtr(s string) *string {
	return &s
}

func TestPlanetFinder_GetPlanet_RequiresCodeOrName(t *testing.T) {
	finder := NewPlanetFinderService(&mockPlanetStore{}, &mockPlanetDirectory{}, &mockRebelReport{}, config.CachePolicyTrustAnyHit, nil)

	cases := []struct {
		name string
		opts *models.PlanetSearchOptions
	}{
		{"nil options", nil},
		{"empty options", &models.PlanetSearchOptions{}},
		{"sector only", &models.PlanetSearchOptions{Sector: strPtr("1A")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := finder.GetPlanet(context.Background(), tc.opts)
			if !errors.Is(err, common.ErrInvalidArgument) {
				t.Fatalf("Expected invalid argument error, got %v", err)
			}
		})
	}
}

func TestPlanetFinder_GetPlanet_StoreHitSkipsRemote(t *testing.T) {
	stored := &entities.Planet{ID: 1, Name: "Tatooine", Code: "TAT", Sector: "1A", RebelInfluence: 20}
	store := &mockPlanetStore{
		findOneFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
			return stored, nil
		},
	}
	directory := &mockPlanetDirectory{}
	spyReport := &mockRebelReport{}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)

	planet, err := finder.GetPlanet(context.Background(), &models.PlanetSearchOptions{Code: strPtr("TAT")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if planet != stored {
		t.Error("Expected the stored planet to be returned unchanged")
	}
	if directory.calls != 0 || spyReport.calls != 0 {
		t.Errorf("Expected zero remote calls, got directory=%d spyReport=%d", directory.calls, spyReport.calls)
	}
}

func TestPlanetFinder_GetPlanet_MissFetchesEnrichesAndPersists(t *testing.T) {
	store := &mockPlanetStore{
		findOneFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
			return nil, nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return []dtos.SindicatePlanet{{Name: "name", Code: "code", Sector: "1A"}}, nil
		},
	}
	spyReport := &mockRebelReport{
		getSpyReportFunc: func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
			if opts.Code == nil || *opts.Code != "code" {
				t.Errorf("Expected spy report filtered by code 'code', got %+v", opts)
			}
			return []dtos.Rebel{{Code: "code", RebelInfluence: 10}}, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)

	planet, err := finder.GetPlanet(context.Background(), &models.PlanetSearchOptions{Code: strPtr("code")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if planet == nil {
		t.Fatal("Expected a planet")
	}
	if planet.RebelInfluence != 10 {
		t.Errorf("Expected rebel influence 10, got %d", planet.RebelInfluence)
	}
	if planet.Name != "name" || planet.Code != "code" || planet.Sector != "1A" {
		t.Errorf("Unexpected planet mapping: %+v", planet)
	}
	if store.insertCalls != 1 {
		t.Errorf("Expected exactly one insert, got %d", store.insertCalls)
	}
}

func TestPlanetFinder_GetPlanet_RemoteMissIsAbsence(t *testing.T) {
	store := &mockPlanetStore{
		findOneFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
			return nil, nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return nil, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, &mockRebelReport{}, config.CachePolicyTrustAnyHit, nil)

	planet, err := finder.GetPlanet(context.Background(), &models.PlanetSearchOptions{Name: strPtr("Unknown")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if planet != nil {
		t.Errorf("Expected absence, got %+v", planet)
	}
	if store.insertCalls != 0 {
		t.Errorf("Expected no insert, got %d", store.insertCalls)
	}
}

func TestPlanetFinder_GetPlanet_MissingSpyReportFailsWithoutInsert(t *testing.T) {
	store := &mockPlanetStore{
		findOneFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
			return nil, nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return []dtos.SindicatePlanet{{Name: "name", Code: "code", Sector: "1A"}}, nil
		},
	}
	spyReport := &mockRebelReport{
		getSpyReportFunc: func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
			return nil, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)

	_, err := finder.GetPlanet(context.Background(), &models.PlanetSearchOptions{Code: strPtr("code")})
	if !errors.Is(err, common.ErrDataIntegrity) {
		t.Fatalf("Expected data integrity error, got %v", err)
	}
	if store.insertCalls != 0 {
		t.Errorf("Expected insert never called, got %d", store.insertCalls)
	}
}

func TestPlanetFinder_GetPlanets_PopulatedStoreSkipsRemote(t *testing.T) {
	stored := []entities.Planet{{Name: "Tatooine", Code: "TAT", Sector: "1A", RebelInfluence: 20}}
	store := &mockPlanetStore{
		findAllFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
			return stored, nil
		},
	}
	directory := &mockPlanetDirectory{}

	finder := NewPlanetFinderService(store, directory, &mockRebelReport{}, config.CachePolicyTrustAnyHit, nil)

	planets, err := finder.GetPlanets(context.Background(), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(planets) != 1 || planets[0].Code != "TAT" {
		t.Errorf("Expected the stored list as-is, got %+v", planets)
	}
	if directory.calls != 0 {
		t.Errorf("Expected zero remote calls, got %d", directory.calls)
	}
	if store.batchCalls != 0 {
		t.Errorf("Expected no batch insert, got %d", store.batchCalls)
	}
}

func TestPlanetFinder_GetPlanets_EmptyStoreFetchesEnrichesAndPersistsBatch(t *testing.T) {
	store := &mockPlanetStore{
		findAllFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
			return nil, nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return []dtos.SindicatePlanet{
				{Name: "Tatooine", Code: "TAT", Sector: "1A"},
				{Name: "Alderaan", Code: "ALD", Sector: "2B"},
			}, nil
		},
	}
	influences := map[string]int{"TAT": 20, "ALD": 5}
	spyReport := &mockRebelReport{
		getSpyReportFunc: func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
			return []dtos.Rebel{{Code: *opts.Code, RebelInfluence: influences[*opts.Code]}}, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)

	planets, err := finder.GetPlanets(context.Background(), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(planets) != 2 {
		t.Fatalf("Expected 2 planets, got %d", len(planets))
	}
	if planets[0].RebelInfluence != 20 || planets[1].RebelInfluence != 5 {
		t.Errorf("Unexpected enrichment: %+v", planets)
	}
	if store.batchCalls != 1 {
		t.Errorf("Expected one batch insert, got %d", store.batchCalls)
	}
}

func TestPlanetFinder_GetPlanets_MissingSpyEntryFailsWholeOperation(t *testing.T) {
	store := &mockPlanetStore{
		findAllFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
			return nil, nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return []dtos.SindicatePlanet{
				{Name: "Tatooine", Code: "TAT", Sector: "1A"},
				{Name: "Ghost", Code: "GHO", Sector: "9Z"},
			}, nil
		},
	}
	spyReport := &mockRebelReport{
		getSpyReportFunc: func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
			if *opts.Code == "TAT" {
				return []dtos.Rebel{{Code: "TAT", RebelInfluence: 20}}, nil
			}
			return nil, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)

	_, err := finder.GetPlanets(context.Background(), nil)
	if !errors.Is(err, common.ErrDataIntegrity) {
		t.Fatalf("Expected data integrity error, got %v", err)
	}
	if store.batchCalls != 0 {
		t.Errorf("Expected no partial persist, got %d batch inserts", store.batchCalls)
	}
}

func TestPlanetFinder_SecondCallIsServedFromStore(t *testing.T) {
	var stored *entities.Planet
	store := &mockPlanetStore{
		findOneFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
			return stored, nil
		},
		insertFunc: func(ctx context.Context, planet *entities.Planet) error {
			stored = planet
			return nil
		},
	}
	directory := &mockPlanetDirectory{
		getPlanetsFunc: func(ctx context.Context, opts *models.PlanetSearchOptions) ([]dtos.SindicatePlanet, error) {
			return []dtos.SindicatePlanet{{Name: "Tatooine", Code: "TAT", Sector: "1A"}}, nil
		},
	}
	spyReport := &mockRebelReport{
		getSpyReportFunc: func(ctx context.Context, opts *models.RebelSearchOptions) ([]dtos.Rebel, error) {
			return []dtos.Rebel{{Code: "TAT", RebelInfluence: 20}}, nil
		},
	}

	finder := NewPlanetFinderService(store, directory, spyReport, config.CachePolicyTrustAnyHit, nil)
	opts := &models.PlanetSearchOptions{Code: strPtr("TAT")}

	if _, err := finder.GetPlanet(context.Background(), opts); err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	if _, err := finder.GetPlanet(context.Background(), opts); err != nil {
		t.Fatalf("Second call failed: %v", err)
	}

	if directory.calls != 1 || spyReport.calls != 1 {
		t.Errorf("Expected one remote round-trip total, got directory=%d spyReport=%d", directory.calls, spyReport.calls)
	}
	if store.insertCalls != 1 {
		t.Errorf("Expected one insert total, got %d", store.insertCalls)
	}
}
