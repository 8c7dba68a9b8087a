package http

import (
	"net/http"
)

// health serves the load-balancer health check. The report always says
// "healthy": the backing stores are simulations that cannot fail, and
// the ability to answer at all is the only real signal.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.GetHealthStatus(r.Context())

	writeJSON(w, r, http.StatusOK, status)
}
