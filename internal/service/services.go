// Package service implements the application logic behind the HTTP
// handlers: service metadata, the fixed product catalog, and synthetic
// order creation. All state is established at startup; request handling
// mutates nothing shared.
package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

// Services bundles every application service consumed by the transport
// layer.
type Services struct {
	AppInfoService AppInfoService
	CatalogService CatalogService
	OrderService   OrderService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, storages, logger),
		CatalogService: NewCatalogService(storages, logger),
		OrderService:   NewOrderService(storages, logger),
	}
}
