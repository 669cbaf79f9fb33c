package service

import (
	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
)

type Services struct {
	CustomerService CustomerService
	AddressService  AddressService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CustomerService: NewCustomerService(storages.CustomerRepository, storages.AddressRepository, validators.NewCustomerValidator(), logger),
		AddressService:  NewAddressService(storages.AddressRepository, validators.NewAddressValidator(), logger),
		AppInfoService:  appInfoService,
	}, nil
}
