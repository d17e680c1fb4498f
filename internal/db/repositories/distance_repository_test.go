package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/entities"
)

func seedDistances(t *testing.T, repo *DistanceRepository, distances ...entities.Distance) {
	t.Helper()
	if err := repo.InsertBatch(context.Background(), distances); err != nil {
		t.Fatalf("Failed to seed distances: %v", err)
	}
}

func TestDistanceRepository_FindOneByPair(t *testing.T) {
	repo := NewDistanceRepository(setupTestDB(t))
	seedDistances(t, repo,
		entities.Distance{Origin: "TAT", Destination: "ALD", LunarYears: decimal.NewFromInt(5)},
		entities.Distance{Origin: "ALD", Destination: "TAT", LunarYears: decimal.NewFromInt(5)},
	)

	distance, err := repo.FindOne(context.Background(), &models.DistanceSearchOptions{
		Origin:      strPtr("TAT"),
		Destination: strPtr("ALD"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if distance == nil {
		t.Fatal("Expected a distance, got nil")
	}
	if !distance.LunarYears.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected 5 lunar years, got %s", distance.LunarYears)
	}
}

func TestDistanceRepository_PairIsDirectional(t *testing.T) {
	repo := NewDistanceRepository(setupTestDB(t))
	seedDistances(t, repo,
		entities.Distance{Origin: "TAT", Destination: "ALD", LunarYears: decimal.NewFromInt(5)},
	)

	distance, err := repo.FindOne(context.Background(), &models.DistanceSearchOptions{
		Origin:      strPtr("ALD"),
		Destination: strPtr("TAT"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if distance != nil {
		t.Errorf("Expected nil for the reverse pair, got %+v", distance)
	}
}

func TestDistanceRepository_FindAllByOrigin(t *testing.T) {
	repo := NewDistanceRepository(setupTestDB(t))
	seedDistances(t, repo,
		entities.Distance{Origin: "TAT", Destination: "ALD", LunarYears: decimal.NewFromInt(5)},
		entities.Distance{Origin: "TAT", Destination: "COR", LunarYears: decimal.NewFromInt(8)},
		entities.Distance{Origin: "ALD", Destination: "COR", LunarYears: decimal.NewFromInt(3)},
	)

	distances, err := repo.FindAll(context.Background(), &models.DistanceSearchOptions{Origin: strPtr("TAT")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(distances) != 2 {
		t.Errorf("Expected 2 distances from TAT, got %d", len(distances))
	}
}

func TestDistanceRepository_DuplicatePairInsertIsIgnored(t *testing.T) {
	repo := NewDistanceRepository(setupTestDB(t))

	first := entities.Distance{Origin: "TAT", Destination: "ALD", LunarYears: decimal.NewFromInt(5)}
	if err := repo.Insert(context.Background(), &first); err != nil {
		t.Fatalf("Expected no error on first insert, got %v", err)
	}

	duplicate := entities.Distance{Origin: "TAT", Destination: "ALD", LunarYears: decimal.NewFromInt(99)}
	if err := repo.Insert(context.Background(), &duplicate); err != nil {
		t.Fatalf("Expected duplicate insert to be a no-op, got %v", err)
	}

	distances, err := repo.FindAll(context.Background(), &models.DistanceSearchOptions{
		Origin:      strPtr("TAT"),
		Destination: strPtr("ALD"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(distances) != 1 {
		t.Fatalf("Expected exactly one TAT-ALD row, got %d", len(distances))
	}
	if !distances[0].LunarYears.Equal(decimal.NewFromInt(5)) {
		t.Errorf("First write must win, got %s lunar years", distances[0].LunarYears)
	}
}
