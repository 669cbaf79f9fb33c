package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery, middleware.StripSlashes)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/", h.root)
	router.Get("/favicon.ico", h.favicon)
	router.Get("/api/health", h.health)

	router.Route("/api/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/{id}", h.getCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
		r.Get("/{id}/addresses", h.listCustomerAddresses)
	})

	router.Route("/api/addresses", func(r chi.Router) {
		r.Post("/", h.createAddress)
		r.Get("/customer/{customerId}", h.listAddressesByCustomer)
		r.Put("/{id}", h.updateAddress)
		r.Delete("/{id}", h.deleteAddress)
	})

	return router
}
