package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/google/uuid"
)

type orderService struct {
	storages *store.Storages

	logger *logger.Logger
}

func NewOrderService(storages *store.Storages, logger *logger.Logger) OrderService {
	return &orderService{
		storages: storages,
		logger:   logger,
	}
}

// CreateOrder validates the request and produces a synthetic order.
// The inventory, payment, and email steps are simulated log statements:
// nothing is persisted and no external system is contacted.
func (s *orderService) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	log := logger.FromContext(ctx)
	log.Info().Msg("processing new order creation")

	if err := validateOrderRequest(req); err != nil {
		log.Error().Err(err).Msg("order validation failed")
		return models.Order{}, err
	}

	log.Info().Msg("order validation passed")
	log.Info().Msg("calculating total")
	log.Info().Msg("checking inventory")

	s.storages.Database.ExecuteQuery(ctx, "INSERT INTO orders (product_id, quantity, customer_email) VALUES ($1, $2, $3)")
	log.Info().Msg("creating order record")
	log.Info().Msg("sending confirmation email")

	order := models.Order{
		OrderID:   newOrderID(),
		Status:    "pending",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	log.Info().Str("order_id", order.OrderID).Msg("order created successfully")
	return order, nil
}

// validateOrderRequest checks the required fields in their contract
// order and reports the first absent one.
func validateOrderRequest(req models.OrderRequest) error {
	if req.ProductID == nil {
		return &MissingFieldError{Field: "product_id"}
	}
	if req.Quantity == nil {
		return &MissingFieldError{Field: "quantity"}
	}
	if req.CustomerEmail == nil {
		return &MissingFieldError{Field: "customer_email"}
	}

	return nil
}

// newOrderID generates a fresh synthetic identifier. Orders are not
// persisted, so no uniqueness guarantee is needed beyond what a random
// UUID fragment provides.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
