package store

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// Storages bundles every backend the services depend on. Constructed
// once at startup and read-only thereafter.
type Storages struct {
	Database *Database
	Cache    *Cache
}

// NewStorages creates the simulated backends and connects them. The
// connects cannot fail, but the error return keeps the call site shaped
// like a real storage bootstrap.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db := NewDatabase(cfg.DB, log)
	if err := db.Connect(); err != nil {
		return nil, err
	}

	cache := NewCache(cfg.Cache, log)
	if err := cache.Connect(); err != nil {
		return nil, err
	}

	return &Storages{
		Database: db,
		Cache:    cache,
	}, nil
}
