package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-customer-keeper/models"
)

type addressValidator struct{}

// NewAddressValidator constructs the [AddressValidator].
func NewAddressValidator() AddressValidator {
	return &addressValidator{}
}

func (v *addressValidator) ValidateNewAddress(ctx context.Context, input models.AddressInput) (models.NewAddress, error) {
	return validateAddress(input)
}

// ValidateAddressUpdate applies the creation rules, customer_id included,
// even though an update never moves the address to another customer.
func (v *addressValidator) ValidateAddressUpdate(ctx context.Context, id int64, input models.AddressInput) (models.AddressUpdate, error) {
	address, err := validateAddress(input)
	if err != nil {
		return models.AddressUpdate{}, err
	}
	return models.AddressUpdate{ID: id, NewAddress: address}, nil
}

func validateAddress(input models.AddressInput) (models.NewAddress, error) {
	customerID := flexToString(input.CustomerID)
	pinCode := flexToString(input.PinCode)

	if isBlank(customerID) || isBlank(input.AddressDetails) || isBlank(input.City) || isBlank(input.State) || isBlank(pinCode) {
		err := newValidationError(ErrMissingFields, MsgAddressFieldsRequired)
		err.MissingFields = map[string]bool{
			FieldCustomerID:     isBlank(customerID),
			FieldAddressDetails: isBlank(input.AddressDetails),
			FieldCity:           isBlank(input.City),
			FieldState:          isBlank(input.State),
			FieldPinCode:        isBlank(pinCode),
		}
		return models.NewAddress{}, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(*customerID), 10, 64)
	if err != nil || id <= 0 {
		return models.NewAddress{}, newValidationError(ErrInvalidFormat, MsgCustomerIDFormat)
	}

	details, ok := lengthBetween(*input.AddressDetails, addressDetailsMinLength, addressDetailsMaxLength)
	if !ok {
		return models.NewAddress{}, newValidationError(ErrInvalidLength, MsgAddressDetailsLength)
	}

	city, ok := lengthBetween(*input.City, placeMinLength, placeMaxLength)
	if !ok {
		return models.NewAddress{}, newValidationError(ErrInvalidLength, MsgCityLength)
	}

	state, ok := lengthBetween(*input.State, placeMinLength, placeMaxLength)
	if !ok {
		return models.NewAddress{}, newValidationError(ErrInvalidLength, MsgStateLength)
	}

	pin := strings.TrimSpace(*pinCode)
	if !pinCodeRegexp.MatchString(pin) {
		return models.NewAddress{}, newValidationError(ErrInvalidFormat, MsgPinCodeFormat)
	}

	country := models.DefaultCountry
	if !isBlank(input.Country) {
		trimmed, ok := lengthBetween(*input.Country, placeMinLength, placeMaxLength)
		if !ok {
			return models.NewAddress{}, newValidationError(ErrInvalidLength, MsgCountryLength)
		}
		country = trimmed
	}

	address := models.NewAddress{
		CustomerID:     id,
		AddressDetails: details,
		City:           city,
		State:          state,
		PinCode:        pin,
		Country:        country,
	}
	if input.IsPrimary != nil {
		address.IsPrimary = bool(*input.IsPrimary)
	}

	return address, nil
}
