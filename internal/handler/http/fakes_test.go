package http

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

type fakeCustomerService struct {
	listFn          func(ctx context.Context, q models.CustomerListQuery) (models.CustomerPage, error)
	getFn           func(ctx context.Context, id int64) (models.CustomerDetails, error)
	createFn        func(ctx context.Context, input models.CustomerInput) (models.CreatedCustomer, error)
	updateFn        func(ctx context.Context, id int64, input models.CustomerInput) error
	deleteFn        func(ctx context.Context, id int64) error
	listAddressesFn func(ctx context.Context, customerID int64) ([]models.Address, error)
}

func (f *fakeCustomerService) ListCustomers(ctx context.Context, q models.CustomerListQuery) (models.CustomerPage, error) {
	return f.listFn(ctx, q)
}

func (f *fakeCustomerService) GetCustomer(ctx context.Context, id int64) (models.CustomerDetails, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, input models.CustomerInput) (models.CreatedCustomer, error) {
	return f.createFn(ctx, input)
}

func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, id int64, input models.CustomerInput) error {
	return f.updateFn(ctx, id, input)
}

func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeCustomerService) ListCustomerAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	return f.listAddressesFn(ctx, customerID)
}

type fakeAddressService struct {
	listFn   func(ctx context.Context, customerID int64) ([]models.Address, error)
	createFn func(ctx context.Context, input models.AddressInput) (models.CreatedAddress, error)
	updateFn func(ctx context.Context, id int64, input models.AddressInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeAddressService) ListAddressesByCustomer(ctx context.Context, customerID int64) ([]models.Address, error) {
	return f.listFn(ctx, customerID)
}

func (f *fakeAddressService) CreateAddress(ctx context.Context, input models.AddressInput) (models.CreatedAddress, error) {
	return f.createFn(ctx, input)
}

func (f *fakeAddressService) UpdateAddress(ctx context.Context, id int64, input models.AddressInput) error {
	return f.updateFn(ctx, id, input)
}

func (f *fakeAddressService) DeleteAddress(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeAppInfoService struct {
	version string
	health  models.Health
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Health(ctx context.Context) models.Health {
	return f.health
}
