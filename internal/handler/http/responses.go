package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// writeJSON writes body with status and logs a failed write.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

// writeFailure answers with {success:false, message}.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, models.ErrorResponse{Message: message}, status)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	h.writeJSON(w, r, models.Response{Success: true, Message: message, Data: data}, status)
}
