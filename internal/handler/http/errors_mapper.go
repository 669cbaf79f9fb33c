package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/app"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// writeError logs err and answers with the response chosen by
// translateError.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).
		Str("func", "*Handler.writeError").
		Str("method", r.Method).
		Str("url", r.URL.RequestURI()).
		Msg("error occurred")

	status, body := h.translateError(err)
	h.writeJSON(w, r, body, status)
}

// translateError maps err to a status and body. Branches are checked in
// order, the first match wins.
func (h *Handler) translateError(err error) (int, models.ErrorResponse) {
	var validationErr *validators.ValidationError

	switch {
	case store.IsStoreError(err):
		return http.StatusBadRequest, models.ErrorResponse{
			Message: app.MsgDatabaseErrorOccurred,
			Error:   h.errorDetail(err, app.MsgInvalidDataProvided),
		}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.ErrorResponse{
			Message:       validationErr.Message,
			MissingFields: validationErr.MissingFields,
		}
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, models.ErrorResponse{Message: app.MsgInvalidJSON}
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound, models.ErrorResponse{Message: app.MsgResourceNotFound}
	case errors.Is(err, fs.ErrPermission):
		return http.StatusForbidden, models.ErrorResponse{Message: app.MsgAccessDenied}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Message: app.MsgInternalServerError,
			Error:   h.errorDetail(err, app.MsgSomethingWentWrong),
		}
	}
}

// errorDetail returns the raw error text outside production and fallback
// otherwise.
func (h *Handler) errorDetail(err error, fallback string) string {
	if h.production {
		return fallback
	}
	return err.Error()
}

// writeCustomerWriteError handles a failed customer create or update.
// Uniqueness conflicts are 409 and any other store failure is 500; the rest
// goes through the translator.
func (h *Handler) writeCustomerWriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		h.writeFailure(w, r, http.StatusConflict, app.MsgPhoneAlreadyExists)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		h.writeFailure(w, r, http.StatusConflict, app.MsgEmailAlreadyExists)
	case errors.Is(err, store.ErrCustomerNotFound):
		h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
	case store.IsStoreError(err):
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeCustomerWriteError").Msg("customer write failed")

		body := models.ErrorResponse{Message: app.MsgDatabaseError}
		if !h.production {
			body.Error = err.Error()
		}
		h.writeJSON(w, r, body, http.StatusInternalServerError)
	default:
		h.writeError(w, r, err)
	}
}
