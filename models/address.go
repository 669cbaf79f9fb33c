// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCountry is stored when an address is written without a country.
const DefaultCountry = "India"

// Address is a persisted customer address.
type Address struct {
	ID int64 `json:"id"`

	// CustomerID references the owning customer.
	CustomerID int64 `json:"customer_id"`

	AddressDetails string `json:"address_details"`
	City           string `json:"city"`
	State          string `json:"state"`

	// PinCode holds exactly 6 digits.
	PinCode string `json:"pin_code"`
	Country string `json:"country"`

	// IsPrimary is not unique per customer: several addresses may be primary.
	IsPrimary bool `json:"is_primary"`

	CreatedAt time.Time `json:"created_at"`
}

// AddressInput is the raw, unvalidated address body of a create or update
// request. A nil field means the client did not send it.
type AddressInput struct {
	CustomerID     *FlexString `json:"customer_id"`
	AddressDetails *string     `json:"address_details"`
	City           *string     `json:"city"`
	State          *string     `json:"state"`
	PinCode        *FlexString `json:"pin_code"`
	Country        *string     `json:"country"`
	IsPrimary      *Flag       `json:"is_primary"`
}

// NewAddress is a validated and normalized address command. It is used both
// to create an address and, together with an ID, to replace one.
type NewAddress struct {
	CustomerID     int64
	AddressDetails string
	City           string
	State          string
	PinCode        string
	Country        string
	IsPrimary      bool
}

// AddressUpdate replaces the mutable fields of the address identified by ID.
// The owning customer is never changed.
type AddressUpdate struct {
	ID int64
	NewAddress
}

// CreatedAddress is the payload returned after an address is created.
type CreatedAddress struct {
	ID int64 `json:"id"`
}
