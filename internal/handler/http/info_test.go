package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_StaticMetadata(t *testing.T) {
	h := newTestHandler(t)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()
	h.info(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var info models.ServiceInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))

	assert.Equal(t, "Go E-Commerce API", info.Service)
	assert.Equal(t, "2.1.0", info.Version)
	assert.Contains(t, info.Endpoints, "health")
	assert.Contains(t, info.Endpoints, "products")
	assert.Contains(t, info.Endpoints, "orders")
	assert.NotEmpty(t, info.Documentation)
	assert.NotEmpty(t, info.Timestamp)
}
