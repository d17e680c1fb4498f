package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"imperial/commercial-routes/internal/models/entities"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used by the repositories.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates the planet and distance tables with their unique
// indexes. The indexes back the conflict-ignoring insert path.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.Planet{}, &entities.Distance{})
}
