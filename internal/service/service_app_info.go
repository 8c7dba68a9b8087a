package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// serviceName is the public name advertised on the root endpoint.
const serviceName = "Go E-Commerce API"

// documentationURL points at the public API docs.
const documentationURL = "https://api.example.com/docs"

type appInfoService struct {
	appVersion string
	bootTime   time.Time
	storages   *store.Storages

	logger *logger.Logger
}

// NewAppInfoService builds the metadata/health service. bootTime is
// captured here, once, so uptime is measured from service construction
// rather than from any per-request state.
func NewAppInfoService(cfg config.App, storages *store.Storages, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: cfg.Version,
		bootTime:   time.Now(),
		storages:   storages,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetHealthStatus(ctx context.Context) models.HealthStatus {
	log := logger.FromContext(ctx)
	log.Info().Msg("health check requested")

	status := models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.bootTime).Seconds(),
		Version:   s.appVersion,
		Checks: models.HealthChecks{
			Database:  connectionVerdict(s.storages.Database.Connected()),
			Cache:     connectionVerdict(s.storages.Cache.Connected()),
			DiskSpace: "ok",
		},
	}

	log.Info().Str("status", status.Status).Msg("health status computed")
	return status
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	log := logger.FromContext(ctx)
	log.Info().Msg("returning API information")

	return models.ServiceInfo{
		Service: serviceName,
		Version: s.appVersion,
		Endpoints: map[string]string{
			"health":   "/health",
			"products": "/api/products",
			"orders":   "/api/orders",
			"users":    "/api/users",
		},
		Documentation: documentationURL,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

func connectionVerdict(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}
