package http

import (
	"net/http"
)

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	serviceInfo := h.services.AppInfoService.GetServiceInfo(r.Context())

	writeJSON(w, r, http.StatusOK, serviceInfo)
}
