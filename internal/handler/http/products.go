package http

import (
	"net/http"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.services.CatalogService.ListProducts(r.Context())

	writeJSON(w, r, http.StatusOK, products)
}
