package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/app"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
)

func (h *Handler) listAddressesByCustomer(w http.ResponseWriter, r *http.Request) {
	resp := models.CustomerAddressesResponse{Success: true, Data: []models.Address{}}

	if id, ok := pathID(r, "customerId"); ok {
		addresses, err := h.services.AddressService.ListAddressesByCustomer(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.Data = addresses
		resp.CustomerID = &id
	}
	resp.Total = len(resp.Data)

	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var input models.AddressInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.AddressService.CreateAddress(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgAddressCreated, created)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgAddressNotFound)
		return
	}

	var input models.AddressInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AddressService.UpdateAddress(r.Context(), id, input); err != nil {
		h.writeAddressError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgAddressUpdated, nil)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgAddressNotFound)
		return
	}

	if err := h.services.AddressService.DeleteAddress(r.Context(), id); err != nil {
		h.writeAddressError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgAddressDeleted, nil)
}

func (h *Handler) writeAddressError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrAddressNotFound) {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgAddressNotFound)
		return
	}
	h.writeError(w, r, err)
}
