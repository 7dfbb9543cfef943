package store

import (
	"database/sql"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/migrations"
)

// DB wraps the settings database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened connection.
func NewDB(conn *sql.DB, logger *logger.Logger) *DB {
	return &DB{DB: conn, logger: logger}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if db == nil {
		return ErrNilDatabase
	}
	return migrations.Migrate(db.DB)
}
