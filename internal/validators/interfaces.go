// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks and normalizes raw request bodies before they
// reach the store.
//
// Each validator turns a loosely typed input from the transport layer into a
// strongly typed command ([models.NewCustomer], [models.CustomerUpdate],
// [models.NewAddress], [models.AddressUpdate]). Services only ever hand
// commands to repositories, so nothing unvalidated is written.
//
// Failures are returned as *[ValidationError] and unwrap to one of
// [ErrMissingFields], [ErrInvalidLength], [ErrInvalidFormat] or
// [ErrNoFieldsProvided].
package validators

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// CustomerValidator validates customer request bodies.
type CustomerValidator interface {
	// ValidateNewCustomer requires first name, last name and phone number
	// and checks every present field.
	ValidateNewCustomer(ctx context.Context, input models.CustomerInput) (models.NewCustomer, error)

	// ValidateCustomerUpdate requires at least one field and checks every
	// present field with the creation rules.
	ValidateCustomerUpdate(ctx context.Context, id int64, input models.CustomerInput) (models.CustomerUpdate, error)
}

// AddressValidator validates address request bodies.
type AddressValidator interface {
	ValidateNewAddress(ctx context.Context, input models.AddressInput) (models.NewAddress, error)
	ValidateAddressUpdate(ctx context.Context, id int64, input models.AddressInput) (models.AddressUpdate, error)
}
