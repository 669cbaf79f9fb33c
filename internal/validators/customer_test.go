// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func flex(s string) *models.FlexString { v := models.FlexString(s); return &v }

func validCustomerInput() models.CustomerInput {
	return models.CustomerInput{
		FirstName:   ptr("Jane"),
		LastName:    ptr("Doe"),
		PhoneNumber: flex("9876543210"),
		Email:       ptr("Jane.Doe@Ex.com"),
	}
}

func requireValidationError(t *testing.T, err error, kind error, message string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, message, vErr.Message)
	return vErr
}

// ---------------------------------------------------------------------------
// ValidateNewCustomer
// ---------------------------------------------------------------------------

func TestValidateNewCustomer_NormalizesFields(t *testing.T) {
	v := NewCustomerValidator()
	input := models.CustomerInput{
		FirstName:   ptr("  Jane "),
		LastName:    ptr(" Doe"),
		PhoneNumber: flex(" 9876543210 "),
		Email:       ptr("  Jane.Doe@Ex.com "),
	}

	got, err := v.ValidateNewCustomer(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "9876543210", got.PhoneNumber)
	require.NotNil(t, got.Email)
	assert.Equal(t, "jane.doe@ex.com", *got.Email)
}

func TestValidateNewCustomer_EmailOptional(t *testing.T) {
	v := NewCustomerValidator()

	for name, email := range map[string]*string{"absent": nil, "empty": ptr("")} {
		t.Run(name, func(t *testing.T) {
			input := validCustomerInput()
			input.Email = email

			got, err := v.ValidateNewCustomer(context.Background(), input)
			require.NoError(t, err)
			assert.Nil(t, got.Email)
		})
	}
}

func TestValidateNewCustomer_MissingFields(t *testing.T) {
	v := NewCustomerValidator()
	input := models.CustomerInput{LastName: ptr("Doe"), FirstName: ptr("")}

	_, err := v.ValidateNewCustomer(context.Background(), input)

	vErr := requireValidationError(t, err, ErrMissingFields, MsgCustomerFieldsRequired)
	assert.Equal(t, map[string]bool{
		FieldFirstName:   true,
		FieldLastName:    false,
		FieldPhoneNumber: true,
	}, vErr.MissingFields)
}

func TestValidateNewCustomer_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.CustomerInput)
		kind    error
		message string
	}{
		{
			name:    "first name too short after trim",
			mutate:  func(in *models.CustomerInput) { in.FirstName = ptr("  J  ") },
			kind:    ErrInvalidLength,
			message: MsgFirstNameLength,
		},
		{
			name:    "first name too long",
			mutate:  func(in *models.CustomerInput) { in.FirstName = ptr(strings.Repeat("a", 51)) },
			kind:    ErrInvalidLength,
			message: MsgFirstNameLength,
		},
		{
			name:    "last name too short",
			mutate:  func(in *models.CustomerInput) { in.LastName = ptr("D") },
			kind:    ErrInvalidLength,
			message: MsgLastNameLength,
		},
		{
			name:    "phone with three digits",
			mutate:  func(in *models.CustomerInput) { in.PhoneNumber = flex("123") },
			kind:    ErrInvalidFormat,
			message: MsgPhoneNumberFormat,
		},
		{
			name:    "phone with letters",
			mutate:  func(in *models.CustomerInput) { in.PhoneNumber = flex("98765abcde") },
			kind:    ErrInvalidFormat,
			message: MsgPhoneNumberFormat,
		},
		{
			name:    "phone with eleven digits",
			mutate:  func(in *models.CustomerInput) { in.PhoneNumber = flex("98765432101") },
			kind:    ErrInvalidFormat,
			message: MsgPhoneNumberFormat,
		},
		{
			name:    "email without domain dot",
			mutate:  func(in *models.CustomerInput) { in.Email = ptr("jane@example") },
			kind:    ErrInvalidFormat,
			message: MsgEmailFormat,
		},
		{
			name:    "email with inner space",
			mutate:  func(in *models.CustomerInput) { in.Email = ptr("ja ne@example.com") },
			kind:    ErrInvalidFormat,
			message: MsgEmailFormat,
		},
	}

	v := NewCustomerValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCustomerInput()
			tt.mutate(&input)

			_, err := v.ValidateNewCustomer(context.Background(), input)
			requireValidationError(t, err, tt.kind, tt.message)
		})
	}
}

func TestValidateNewCustomer_BoundaryLengths(t *testing.T) {
	v := NewCustomerValidator()

	input := validCustomerInput()
	input.FirstName = ptr("Al")
	input.LastName = ptr(strings.Repeat("b", 50))

	_, err := v.ValidateNewCustomer(context.Background(), input)
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// ValidateCustomerUpdate
// ---------------------------------------------------------------------------

func TestValidateCustomerUpdate_NoFields(t *testing.T) {
	v := NewCustomerValidator()

	tests := map[string]models.CustomerInput{
		"nothing sent":      {},
		"only empty values": {FirstName: ptr(""), Email: ptr("")},
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := v.ValidateCustomerUpdate(context.Background(), 1, input)
			requireValidationError(t, err, ErrNoFieldsProvided, MsgNoCustomerFields)
		})
	}
}

func TestValidateCustomerUpdate_PartialFields(t *testing.T) {
	v := NewCustomerValidator()

	got, err := v.ValidateCustomerUpdate(context.Background(), 7, models.CustomerInput{LastName: ptr("  Smith ")})
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.ID)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Smith", *got.LastName)
	assert.Nil(t, got.FirstName)
	assert.Nil(t, got.PhoneNumber)
	assert.Nil(t, got.Email)
	assert.False(t, got.ClearEmail)
}

func TestValidateCustomerUpdate_EmptyEmailClears(t *testing.T) {
	v := NewCustomerValidator()

	got, err := v.ValidateCustomerUpdate(context.Background(), 1, models.CustomerInput{
		FirstName: ptr("Jane"),
		Email:     ptr(""),
	})
	require.NoError(t, err)

	assert.True(t, got.ClearEmail)
	assert.Nil(t, got.Email)
}

func TestValidateCustomerUpdate_NormalizesEmail(t *testing.T) {
	v := NewCustomerValidator()

	got, err := v.ValidateCustomerUpdate(context.Background(), 1, models.CustomerInput{Email: ptr(" NEW@Mail.COM ")})
	require.NoError(t, err)

	require.NotNil(t, got.Email)
	assert.Equal(t, "new@mail.com", *got.Email)
}

func TestValidateCustomerUpdate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		input   models.CustomerInput
		kind    error
		message string
	}{
		{
			name:    "present empty first name with other field",
			input:   models.CustomerInput{FirstName: ptr(""), LastName: ptr("Doe")},
			kind:    ErrInvalidLength,
			message: MsgFirstNameLength,
		},
		{
			name:    "bad phone",
			input:   models.CustomerInput{PhoneNumber: flex("12345")},
			kind:    ErrInvalidFormat,
			message: MsgPhoneNumberFormat,
		},
		{
			name:    "bad email",
			input:   models.CustomerInput{Email: ptr("not-an-email")},
			kind:    ErrInvalidFormat,
			message: MsgEmailFormat,
		},
	}

	v := NewCustomerValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateCustomerUpdate(context.Background(), 1, tt.input)
			requireValidationError(t, err, tt.kind, tt.message)
		})
	}
}
