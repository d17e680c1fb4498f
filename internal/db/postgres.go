package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"imperial/commercial-routes/internal/config"
)

var DB *sqlx.DB

// InitPostgres connects with sqlx, retrying while the database comes up.
// The sqlx handle is used for liveness checks; data access goes through GORM.
func InitPostgres() error {
	dsn := config.PostgresDSN()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
