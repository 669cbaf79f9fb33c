package service

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// CustomerService covers the customer resource. Raw inputs are validated
// before any repository call.
type CustomerService interface {
	// ListCustomers runs the page query and then the count query for the
	// same filters.
	ListCustomers(ctx context.Context, q models.CustomerListQuery) (models.CustomerPage, error)

	// GetCustomer returns the customer with its addresses in insertion order.
	GetCustomer(ctx context.Context, id int64) (models.CustomerDetails, error)

	CreateCustomer(ctx context.Context, input models.CustomerInput) (models.CreatedCustomer, error)
	UpdateCustomer(ctx context.Context, id int64, input models.CustomerInput) error
	DeleteCustomer(ctx context.Context, id int64) error

	// ListCustomerAddresses does not check that the customer exists.
	ListCustomerAddresses(ctx context.Context, customerID int64) ([]models.Address, error)
}

// AddressService covers the address resource.
type AddressService interface {
	// ListAddressesByCustomer orders primary addresses first, then by
	// creation time.
	ListAddressesByCustomer(ctx context.Context, customerID int64) ([]models.Address, error)

	CreateAddress(ctx context.Context, input models.AddressInput) (models.CreatedAddress, error)
	UpdateAddress(ctx context.Context, id int64, input models.AddressInput) error
	DeleteAddress(ctx context.Context, id int64) error
}

// AppInfoService reports the running build and its health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// Health pings the database and never fails: an unreachable database
	// yields a degraded report.
	Health(ctx context.Context) models.Health
}
