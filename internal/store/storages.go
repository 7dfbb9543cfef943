package store

import "github.com/MKhiriev/go-git-save/internal/logger"

// Storages groups the repositories served by one database.
type Storages struct {
	ConfigRepository     ConfigRepository
	AppSettingRepository AppSettingRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ConfigRepository:     NewConfigRepository(db, logger),
		AppSettingRepository: NewAppSettingRepository(db, logger),
	}
}
