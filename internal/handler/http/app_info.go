package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/app"
	"github.com/MKhiriev/go-customer-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(app.MsgAPIRunning))
}

func (h *Handler) favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// health answers 503 while the database is unreachable so that probes fail.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.Health(r.Context())

	status := http.StatusOK
	if health.Status != models.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}

	h.writeJSON(w, r, health, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeFailure(w, r, http.StatusNotFound, app.MsgNotFoundPrefix+r.URL.RequestURI())
}
