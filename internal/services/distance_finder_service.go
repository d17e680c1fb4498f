package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"imperial/commercial-routes/internal/common"
	"imperial/commercial-routes/internal/config"
	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/entities"
)

// DistanceFinderService resolves distances through the local store first
// and falls back to the sindicate adjacency list. The adjacency records do
// not carry their origin, so it is attached here from the map key.
type DistanceFinderService struct {
	store     DistanceStore
	directory DistanceDirectory
	policy    string
	metrics   FinderMetrics
	group     singleflight.Group
}

// NewDistanceFinderService creates a distance finder; metrics may be nil.
func NewDistanceFinderService(
	store DistanceStore,
	directory DistanceDirectory,
	policy string,
	metrics FinderMetrics,
) *DistanceFinderService {
	return &DistanceFinderService{
		store:     store,
		directory: directory,
		policy:    policy,
		metrics:   metrics,
	}
}

// GetDistance resolves the distance between two planet codes. An origin the
// sindicate does not know, an empty destination list, or no record for the
// requested destination all yield absence, not an error.
func (s *DistanceFinderService) GetDistance(ctx context.Context, origin, destination string) (*entities.Distance, error) {
	if strings.TrimSpace(origin) == "" {
		return nil, fmt.Errorf("%w: origin is required", common.ErrInvalidArgument)
	}
	if strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", common.ErrInvalidArgument)
	}

	opts := &models.DistanceSearchOptions{Origin: &origin, Destination: &destination}
	distance, err := s.store.FindOne(ctx, opts)
	if err != nil {
		return nil, err
	}
	if distance != nil {
		s.storeHit()
		return distance, nil
	}
	s.storeMiss()

	v, err, _ := s.group.Do("distance:"+origin+">"+destination, func() (interface{}, error) {
		return s.fetchAndPersist(ctx, origin, destination)
	})
	if err != nil {
		return nil, err
	}

	distance, _ = v.(*entities.Distance)
	return distance, nil
}

func (s *DistanceFinderService) fetchAndPersist(ctx context.Context, origin, destination string) (*entities.Distance, error) {
	remote, err := s.directory.GetDistances(ctx, &origin, &destination)
	if err != nil {
		return nil, err
	}

	records, ok := remote[origin]
	if !ok || len(records) == 0 {
		return nil, nil
	}

	for _, record := range records {
		if record.Code != destination {
			continue
		}

		distance := &entities.Distance{
			Origin:      origin,
			Destination: record.Code,
			LunarYears:  record.LunarYears,
		}
		if err := s.store.Insert(ctx, distance); err != nil {
			return nil, err
		}
		return distance, nil
	}

	return nil, nil
}

// GetDistances resolves a distance list with the same cache policy as the
// planet finder. On an empty store the full adjacency structure is
// flattened into (origin, destination) pairs, persisted when non-empty, and
// returned — possibly empty, never nil.
func (s *DistanceFinderService) GetDistances(ctx context.Context, opts *models.DistanceSearchOptions) ([]entities.Distance, error) {
	if s.policy != config.CachePolicyRefreshAlways {
		distances, err := s.store.FindAll(ctx, opts)
		if err != nil {
			return nil, err
		}
		if len(distances) > 0 {
			s.storeHit()
			return distances, nil
		}
	}
	s.storeMiss()

	var originHint, destinationHint *string
	if opts != nil {
		originHint, destinationHint = opts.Origin, opts.Destination
	}

	remote, err := s.directory.GetDistances(ctx, originHint, destinationHint)
	if err != nil {
		return nil, err
	}

	// Flatten in sorted key order so repeated fetches produce the same
	// insert order.
	origins := make([]string, 0, len(remote))
	for origin := range remote {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	distances := make([]entities.Distance, 0, len(remote))
	for _, origin := range origins {
		for _, record := range remote[origin] {
			distances = append(distances, entities.Distance{
				Origin:      origin,
				Destination: record.Code,
				LunarYears:  record.LunarYears,
			})
		}
	}

	if len(distances) > 0 {
		if err := s.store.InsertBatch(ctx, distances); err != nil {
			return nil, err
		}
	}

	return distances, nil
}

func (s *DistanceFinderService) storeHit() {
	if s.metrics != nil {
		s.metrics.StoreHit("distance")
	}
}

func (s *DistanceFinderService) storeMiss() {
	if s.metrics != nil {
		s.metrics.StoreMiss("distance")
	}
}
