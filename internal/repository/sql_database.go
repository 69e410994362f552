package repository

import (
	"database/sql"

	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/migrations"
)

// DB wraps the raw connection together with the driver-specific error
// classifier and the goose dialect the migrations run under.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
