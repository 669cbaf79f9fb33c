package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/app"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CustomerService.ListCustomers(r.Context(), listQueryFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CustomerListResponse{
		Success:    true,
		Data:       page.Data,
		Pagination: page.Pagination,
		Filters:    page.Filters,
	}, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
			return
		}
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", customer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input models.CustomerInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(r.Context(), input)
	if err != nil {
		h.writeCustomerWriteError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgCustomerCreated, created)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
		return
	}

	var input models.CustomerInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.CustomerService.UpdateCustomer(r.Context(), id, input); err != nil {
		h.writeCustomerWriteError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCustomerUpdated, nil)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
		return
	}

	if err := h.services.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			h.writeFailure(w, r, http.StatusNotFound, app.MsgCustomerNotFound)
			return
		}
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCustomerDeleted, nil)
}

func (h *Handler) listCustomerAddresses(w http.ResponseWriter, r *http.Request) {
	addresses := []models.Address{}

	// a non-numeric id matches no address
	if id, ok := pathID(r, "id"); ok {
		var err error
		addresses, err = h.services.CustomerService.ListCustomerAddresses(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	h.writeJSON(w, r, models.AddressListResponse{Success: true, Data: addresses}, http.StatusOK)
}
