package store

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// Cache simulates a cache backend connection. Like [Database], it does
// no real I/O and always reports success.
type Cache struct {
	url       string
	connected bool

	logger *logger.Logger
}

// NewCache creates a Cache for the given connection settings. The URL
// is only ever logged truncated; it is never parsed.
func NewCache(cfg config.Cache, log *logger.Logger) *Cache {
	log.Info().Str("url", truncate(cfg.URL, maxDSNLogLength)).Msg("initializing cache connection")

	return &Cache{
		url:    cfg.URL,
		logger: log,
	}
}

// Connect marks the cache as connected. It always succeeds.
func (c *Cache) Connect() error {
	c.logger.Info().Msg("connecting to cache")
	c.logger.Info().Msg("cache connection established")

	c.connected = true
	return nil
}

// Connected reports whether Connect has completed.
func (c *Cache) Connected() bool {
	return c.connected
}
