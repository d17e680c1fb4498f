package repositories

import (
	"context"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/entities"
)

// DistanceRepository handles distance table operations.
type DistanceRepository struct {
	db *gormlib.DB
}

// NewDistanceRepository creates a new distance repository.
func NewDistanceRepository(db *gormlib.DB) *DistanceRepository {
	return &DistanceRepository{db: db}
}

func (r *DistanceRepository) scoped(ctx context.Context, opts *models.DistanceSearchOptions) *gormlib.DB {
	q := r.db.WithContext(ctx).Model(&entities.Distance{})
	if opts == nil {
		return q
	}
	if opts.Origin != nil {
		q = q.Where("origin = ?", *opts.Origin)
	}
	if opts.Destination != nil {
		q = q.Where("destination = ?", *opts.Destination)
	}
	return q
}

// FindOne returns the first distance matching the options, or nil when none
// matches.
func (r *DistanceRepository) FindOne(ctx context.Context, opts *models.DistanceSearchOptions) (*entities.Distance, error) {
	var distance entities.Distance

	err := r.scoped(ctx, opts).First(&distance).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &distance, nil
}

// FindAll returns every distance matching the options.
func (r *DistanceRepository) FindAll(ctx context.Context, opts *models.DistanceSearchOptions) ([]entities.Distance, error) {
	var distances []entities.Distance

	if err := r.scoped(ctx, opts).Find(&distances).Error; err != nil {
		return nil, err
	}

	return distances, nil
}

var distancePairColumns = []clause.Column{{Name: "origin"}, {Name: "destination"}}

// Insert persists a newly discovered distance, ignoring the row when the
// origin/destination pair already exists.
func (r *DistanceRepository) Insert(ctx context.Context, distance *entities.Distance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: distancePairColumns, DoNothing: true}).
		Create(distance).Error
}

// InsertBatch persists the flattened adjacency list in one call.
func (r *DistanceRepository) InsertBatch(ctx context.Context, distances []entities.Distance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: distancePairColumns, DoNothing: true}).
		CreateInBatches(distances, 100).Error
}
