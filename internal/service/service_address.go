package service

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
	"github.com/MKhiriev/go-customer-keeper/models"
)

type addressService struct {
	addressRepository store.AddressRepository
	validator         validators.AddressValidator

	logger *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, validator validators.AddressValidator, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (a *addressService) ListAddressesByCustomer(ctx context.Context, customerID int64) ([]models.Address, error) {
	addresses, err := a.addressRepository.ListAddressesByCustomer(ctx, customerID, store.AddressOrderPrimaryFirst)
	if err != nil {
		return nil, err
	}

	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, nil
}

func (a *addressService) CreateAddress(ctx context.Context, input models.AddressInput) (models.CreatedAddress, error) {
	address, err := a.validator.ValidateNewAddress(ctx, input)
	if err != nil {
		return models.CreatedAddress{}, err
	}

	id, err := a.addressRepository.CreateAddress(ctx, address)
	if err != nil {
		return models.CreatedAddress{}, err
	}
	a.logger.Debug().Str("func", "*addressService.CreateAddress").Int64("address_id", id).Msg("address created")

	return models.CreatedAddress{ID: id}, nil
}

func (a *addressService) UpdateAddress(ctx context.Context, id int64, input models.AddressInput) error {
	update, err := a.validator.ValidateAddressUpdate(ctx, id, input)
	if err != nil {
		return err
	}

	return a.addressRepository.UpdateAddress(ctx, update)
}

func (a *addressService) DeleteAddress(ctx context.Context, id int64) error {
	return a.addressRepository.DeleteAddress(ctx, id)
}
