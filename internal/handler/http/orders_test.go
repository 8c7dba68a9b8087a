package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCreateOrder(t *testing.T, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req = injectNopLogger(req)

	rr := httptest.NewRecorder()
	h.createOrder(rr, req)
	return rr
}

func TestCreateOrder_Success(t *testing.T) {
	rr := executeCreateOrder(t,
		`{"product_id":1,"quantity":2,"customer_email":"a@b.com"}`,
		"application/json",
	)

	require.Equal(t, http.StatusCreated, rr.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, "pending", order.Status)
	assert.NotEmpty(t, order.OrderID)
	assert.NotEmpty(t, order.CreatedAt)
}

func TestCreateOrder_NonJSONContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{name: "text", contentType: "text/plain"},
		{name: "form", contentType: "application/x-www-form-urlencoded"},
		{name: "missing", contentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeCreateOrder(t, `{"product_id":1}`, tt.contentType)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error": "Content-Type must be application/json"}`, rr.Body.String())
		})
	}
}

func TestCreateOrder_UndecodableBody(t *testing.T) {
	rr := executeCreateOrder(t, `{"product_id": }`, "application/json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Bad Request", envelope.Error)
	assert.Equal(t, http.StatusBadRequest, envelope.Code)
}

func TestCreateOrder_MissingFields_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing customer_email",
			body:      `{"product_id":1,"quantity":2}`,
			wantField: "customer_email",
		},
		{
			name:      "missing quantity",
			body:      `{"product_id":1,"customer_email":"a@b.com"}`,
			wantField: "quantity",
		},
		{
			name:      "missing product_id",
			body:      `{"quantity":2,"customer_email":"a@b.com"}`,
			wantField: "product_id",
		},
		{
			name:      "empty object",
			body:      `{}`,
			wantField: "product_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeCreateOrder(t, tt.body, "application/json")

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var envelope models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
			assert.Equal(t, "Missing field: "+tt.wantField, envelope.Error)
		})
	}
}
