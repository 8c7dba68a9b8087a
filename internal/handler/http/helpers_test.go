package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// newTestHandler builds a Handler over the real services and simulated
// stores. The backends never fail, so this is as hermetic as a mock.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App: config.App{
			SecretKey: "secret",
			APIKey:    "key",
			Version:   "2.1.0",
		},
		Storage: config.Storage{
			DB:    config.DB{DSN: "postgresql://localhost/shop"},
			Cache: config.Cache{URL: "redis://localhost:6379"},
		},
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	return NewHandler(service.NewServices(storages, cfg, logger.Nop()), logger.Nop())
}

// injectNopLogger puts a nop logger into the request context the same
// way the request-id middleware does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
