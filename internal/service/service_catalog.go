package service

import (
	"context"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// catalog is the fixed product set. Package-level and never mutated.
var catalog = []models.Product{
	{ID: 1, Name: "Laptop", Price: 999.99},
	{ID: 2, Name: "Mouse", Price: 29.99},
	{ID: 3, Name: "Keyboard", Price: 79.99},
}

type catalogService struct {
	storages *store.Storages

	logger *logger.Logger
}

func NewCatalogService(storages *store.Storages, logger *logger.Logger) CatalogService {
	return &catalogService{
		storages: storages,
		logger:   logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) models.ProductList {
	log := logger.FromContext(ctx)
	log.Info().Msg("fetching products from database")

	result := s.storages.Database.ExecuteQuery(ctx, "SELECT * FROM products WHERE active = true")
	log.Debug().Str("query_status", result.Status).Msg("query completed")

	products := make([]models.Product, len(catalog))
	copy(products, catalog)

	log.Info().Int("count", len(products)).Msg("retrieved products")
	return models.ProductList{
		Products: products,
		Count:    len(products),
	}
}
