package service

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
	"github.com/MKhiriev/go-customer-keeper/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	addressRepository  store.AddressRepository
	validator          validators.CustomerValidator

	logger *logger.Logger
}

func NewCustomerService(
	customerRepository store.CustomerRepository,
	addressRepository store.AddressRepository,
	validator validators.CustomerValidator,
	logger *logger.Logger,
) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		addressRepository:  addressRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (c *customerService) ListCustomers(ctx context.Context, q models.CustomerListQuery) (models.CustomerPage, error) {
	items, err := c.customerRepository.ListCustomers(ctx, q)
	if err != nil {
		return models.CustomerPage{}, err
	}

	total, err := c.customerRepository.CountCustomers(ctx, q)
	if err != nil {
		return models.CustomerPage{}, err
	}

	if items == nil {
		items = []models.CustomerListItem{}
	}

	return models.CustomerPage{
		Data:       items,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
		Filters:    q.Filters(),
	}, nil
}

func (c *customerService) GetCustomer(ctx context.Context, id int64) (models.CustomerDetails, error) {
	customer, err := c.customerRepository.FindCustomerByID(ctx, id)
	if err != nil {
		return models.CustomerDetails{}, err
	}

	addresses, err := c.ListCustomerAddresses(ctx, id)
	if err != nil {
		return models.CustomerDetails{}, err
	}

	return models.CustomerDetails{
		Customer:     customer,
		Addresses:    addresses,
		AddressCount: len(addresses),
	}, nil
}

func (c *customerService) CreateCustomer(ctx context.Context, input models.CustomerInput) (models.CreatedCustomer, error) {
	customer, err := c.validator.ValidateNewCustomer(ctx, input)
	if err != nil {
		return models.CreatedCustomer{}, err
	}

	id, err := c.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		return models.CreatedCustomer{}, err
	}
	c.logger.Debug().Str("func", "*customerService.CreateCustomer").Int64("customer_id", id).Msg("customer created")

	return models.CreatedCustomer{
		ID:          id,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		PhoneNumber: customer.PhoneNumber,
		Email:       customer.Email,
	}, nil
}

func (c *customerService) UpdateCustomer(ctx context.Context, id int64, input models.CustomerInput) error {
	update, err := c.validator.ValidateCustomerUpdate(ctx, id, input)
	if err != nil {
		return err
	}

	return c.customerRepository.UpdateCustomer(ctx, update)
}

func (c *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return c.customerRepository.DeleteCustomer(ctx, id)
}

func (c *customerService) ListCustomerAddresses(ctx context.Context, customerID int64) ([]models.Address, error) {
	addresses, err := c.addressRepository.ListAddressesByCustomer(ctx, customerID, store.AddressOrderInsertion)
	if err != nil {
		return nil, err
	}

	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, nil
}
