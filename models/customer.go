// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Customer is a persisted customer record.
type Customer struct {
	// ID is assigned by the store and never changes.
	ID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// PhoneNumber holds exactly 10 digits and is unique across customers.
	PhoneNumber string `json:"phone_number"`

	// Email is optional, lower-cased and unique across customers when set.
	Email *string `json:"email"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListItem is a single row of the customer listing: the customer
// together with aggregates computed over its addresses.
type CustomerListItem struct {
	Customer

	// AddressCount is the number of addresses joined to the customer.
	AddressCount int `json:"address_count"`

	// Cities is the comma-joined list of distinct address cities, or nil
	// when the customer has no addresses.
	Cities *string `json:"cities"`
}

// CustomerDetails is a customer with all of its addresses attached.
type CustomerDetails struct {
	Customer

	Addresses    []Address `json:"addresses"`
	AddressCount int       `json:"address_count"`
}

// CustomerInput is the raw, unvalidated customer body of a create or update
// request. A nil field means the client did not send it.
type CustomerInput struct {
	FirstName   *string     `json:"first_name"`
	LastName    *string     `json:"last_name"`
	PhoneNumber *FlexString `json:"phone_number"`
	Email       *string     `json:"email"`
}

// NewCustomer is a validated and normalized customer creation command.
type NewCustomer struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       *string
}

// CustomerUpdate is a validated and normalized customer update command.
// Only non-nil fields are written.
type CustomerUpdate struct {
	ID int64

	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Email       *string

	// ClearEmail is set when the client sent an empty email, which removes
	// the stored address. It takes precedence over Email.
	ClearEmail bool
}

// IsEmpty reports whether the update carries no column to write.
func (u CustomerUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil && u.Email == nil && !u.ClearEmail
}

// CreatedCustomer is the payload returned after a customer is created.
type CreatedCustomer struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email"`
}
