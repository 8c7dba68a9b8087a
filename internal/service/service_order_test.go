package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(config.Storage{
		DB:    config.DB{DSN: "postgresql://localhost/shop"},
		Cache: config.Cache{URL: "redis://localhost:6379"},
	}, logger.Nop())
	require.NoError(t, err)
	return storages
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validOrderRequest() models.OrderRequest {
	return models.OrderRequest{
		ProductID:     intPtr(1),
		Quantity:      intPtr(2),
		CustomerEmail: strPtr("a@b.com"),
	}
}

// ---- CreateOrder ----

func TestCreateOrder_Success(t *testing.T) {
	svc := NewOrderService(newTestStorages(t), logger.Nop())

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", order.Status)
	assert.NotEmpty(t, order.OrderID)
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.NotEmpty(t, order.CreatedAt)
}

// TestCreateOrder_FreshIdentifiers verifies that repeated calls do not
// reuse identifiers; there is no idempotency across calls.
func TestCreateOrder_FreshIdentifiers(t *testing.T) {
	svc := NewOrderService(newTestStorages(t), logger.Nop())

	first, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
}

func TestCreateOrder_MissingFields_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.OrderRequest
		wantField string
	}{
		{
			name: "missing product_id",
			req: models.OrderRequest{
				Quantity:      intPtr(2),
				CustomerEmail: strPtr("a@b.com"),
			},
			wantField: "product_id",
		},
		{
			name: "missing quantity",
			req: models.OrderRequest{
				ProductID:     intPtr(1),
				CustomerEmail: strPtr("a@b.com"),
			},
			wantField: "quantity",
		},
		{
			name: "missing customer_email",
			req: models.OrderRequest{
				ProductID: intPtr(1),
				Quantity:  intPtr(2),
			},
			wantField: "customer_email",
		},
		{
			name:      "empty request reports first field",
			req:       models.OrderRequest{},
			wantField: "product_id",
		},
	}

	svc := NewOrderService(newTestStorages(t), logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := svc.CreateOrder(context.Background(), tt.req)
			require.Error(t, err)
			assert.Empty(t, order.OrderID)

			assert.ErrorIs(t, err, ErrMissingField)

			var missingErr *MissingFieldError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.wantField, missingErr.Field)
			assert.Equal(t, "Missing field: "+tt.wantField, err.Error())
		})
	}
}
