package repositories

import (
	"context"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"imperial/commercial-routes/internal/models"
	"imperial/commercial-routes/internal/models/entities"
)

// PlanetRepository handles planet table operations.
type PlanetRepository struct {
	db *gormlib.DB
}

// NewPlanetRepository creates a new planet repository.
func NewPlanetRepository(db *gormlib.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) scoped(ctx context.Context, opts *models.PlanetSearchOptions) *gormlib.DB {
	q := r.db.WithContext(ctx).Model(&entities.Planet{})
	if opts == nil {
		return q
	}
	if opts.Name != nil {
		q = q.Where("name = ?", *opts.Name)
	}
	if opts.Code != nil {
		q = q.Where("code = ?", *opts.Code)
	}
	if opts.Sector != nil {
		q = q.Where("sector = ?", *opts.Sector)
	}
	if opts.RebelInfluence != nil {
		q = q.Where("rebel_influence = ?", *opts.RebelInfluence)
	}
	return q
}

// FindOne returns the first planet matching the options, or nil when none
// matches.
func (r *PlanetRepository) FindOne(ctx context.Context, opts *models.PlanetSearchOptions) (*entities.Planet, error) {
	var planet entities.Planet

	err := r.scoped(ctx, opts).First(&planet).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &planet, nil
}

// FindAll returns every planet matching the options.
func (r *PlanetRepository) FindAll(ctx context.Context, opts *models.PlanetSearchOptions) ([]entities.Planet, error) {
	var planets []entities.Planet

	if err := r.scoped(ctx, opts).Find(&planets).Error; err != nil {
		return nil, err
	}

	return planets, nil
}

// Insert persists a newly discovered planet. Concurrent first-fetches of the
// same planet race to this point; the unique index on code plus DO NOTHING
// keeps the store free of duplicates.
func (r *PlanetRepository) Insert(ctx context.Context, planet *entities.Planet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(planet).Error
}

// InsertBatch persists a batch of enriched planets in one call.
func (r *PlanetRepository) InsertBatch(ctx context.Context, planets []entities.Planet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		CreateInBatches(planets, 100).Error
}
