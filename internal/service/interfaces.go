package service

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// AppInfoService reports service metadata and health. Both payloads are
// derived from startup state only; there is no live dependency probing.
type AppInfoService interface {
	// GetAppVersion returns the advertised application version.
	GetAppVersion(ctx context.Context) string

	// GetHealthStatus returns the current health report: status,
	// timestamp, uptime since boot, and the simulated dependency checks.
	GetHealthStatus(ctx context.Context) models.HealthStatus

	// GetServiceInfo returns the static service metadata shown on the
	// root endpoint.
	GetServiceInfo(ctx context.Context) models.ServiceInfo
}

// CatalogService serves the product catalog.
type CatalogService interface {
	// ListProducts returns the full fixed catalog. No query, no filter,
	// no pagination.
	ListProducts(ctx context.Context) models.ProductList
}

// OrderService creates orders.
type OrderService interface {
	// CreateOrder validates req and returns a synthetic order record.
	// A request missing one of the required fields fails with a
	// *MissingFieldError naming the first absent field.
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error)
}
