package store

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository persists customers and answers the listing queries.
type CustomerRepository interface {
	// ListCustomers returns one page of customers with their address
	// aggregates, filtered and ordered as q requests.
	ListCustomers(ctx context.Context, q models.CustomerListQuery) ([]models.CustomerListItem, error)

	// CountCustomers returns the number of customers matching the filters of q.
	CountCustomers(ctx context.Context, q models.CustomerListQuery) (int, error)

	// FindCustomerByID returns [ErrCustomerNotFound] when no row matches.
	FindCustomerByID(ctx context.Context, id int64) (models.Customer, error)

	// CreateCustomer returns the store-assigned id.
	CreateCustomer(ctx context.Context, customer models.NewCustomer) (int64, error)

	// UpdateCustomer returns [ErrCustomerNotFound] when no row was affected.
	UpdateCustomer(ctx context.Context, update models.CustomerUpdate) error

	// DeleteCustomer returns [ErrCustomerNotFound] when no row was affected.
	DeleteCustomer(ctx context.Context, id int64) error
}

// AddressRepository persists customer addresses.
type AddressRepository interface {
	ListAddressesByCustomer(ctx context.Context, customerID int64, order AddressOrder) ([]models.Address, error)
	CreateAddress(ctx context.Context, address models.NewAddress) (int64, error)

	// UpdateAddress returns [ErrAddressNotFound] when no row was affected.
	UpdateAddress(ctx context.Context, update models.AddressUpdate) error

	// DeleteAddress returns [ErrAddressNotFound] when no row was affected.
	DeleteAddress(ctx context.Context, id int64) error
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
