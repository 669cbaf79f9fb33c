package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-customer-keeper/models"
)

type customerValidator struct{}

// NewCustomerValidator constructs the [CustomerValidator].
func NewCustomerValidator() CustomerValidator {
	return &customerValidator{}
}

func (v *customerValidator) ValidateNewCustomer(ctx context.Context, input models.CustomerInput) (models.NewCustomer, error) {
	phone := flexToString(input.PhoneNumber)

	if isBlank(input.FirstName) || isBlank(input.LastName) || isBlank(phone) {
		err := newValidationError(ErrMissingFields, MsgCustomerFieldsRequired)
		err.MissingFields = map[string]bool{
			FieldFirstName:   isBlank(input.FirstName),
			FieldLastName:    isBlank(input.LastName),
			FieldPhoneNumber: isBlank(phone),
		}
		return models.NewCustomer{}, err
	}

	firstName, err := validateName(*input.FirstName, MsgFirstNameLength)
	if err != nil {
		return models.NewCustomer{}, err
	}

	lastName, err := validateName(*input.LastName, MsgLastNameLength)
	if err != nil {
		return models.NewCustomer{}, err
	}

	phoneNumber, err := validatePhoneNumber(*phone)
	if err != nil {
		return models.NewCustomer{}, err
	}

	customer := models.NewCustomer{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	}

	// an empty email is the same as none on creation
	if !isBlank(input.Email) {
		email, err := validateEmail(*input.Email)
		if err != nil {
			return models.NewCustomer{}, err
		}
		customer.Email = &email
	}

	return customer, nil
}

func (v *customerValidator) ValidateCustomerUpdate(ctx context.Context, id int64, input models.CustomerInput) (models.CustomerUpdate, error) {
	phone := flexToString(input.PhoneNumber)

	if isBlank(input.FirstName) && isBlank(input.LastName) && isBlank(phone) && isBlank(input.Email) {
		return models.CustomerUpdate{}, newValidationError(ErrNoFieldsProvided, MsgNoCustomerFields)
	}

	update := models.CustomerUpdate{ID: id}

	if input.FirstName != nil {
		firstName, err := validateName(*input.FirstName, MsgFirstNameLength)
		if err != nil {
			return models.CustomerUpdate{}, err
		}
		update.FirstName = &firstName
	}

	if input.LastName != nil {
		lastName, err := validateName(*input.LastName, MsgLastNameLength)
		if err != nil {
			return models.CustomerUpdate{}, err
		}
		update.LastName = &lastName
	}

	if phone != nil {
		phoneNumber, err := validatePhoneNumber(*phone)
		if err != nil {
			return models.CustomerUpdate{}, err
		}
		update.PhoneNumber = &phoneNumber
	}

	if input.Email != nil {
		if *input.Email == "" {
			update.ClearEmail = true
		} else {
			email, err := validateEmail(*input.Email)
			if err != nil {
				return models.CustomerUpdate{}, err
			}
			update.Email = &email
		}
	}

	return update, nil
}

func validateName(name, message string) (string, error) {
	trimmed, ok := lengthBetween(name, nameMinLength, nameMaxLength)
	if !ok {
		return "", newValidationError(ErrInvalidLength, message)
	}
	return trimmed, nil
}

func validatePhoneNumber(phone string) (string, error) {
	trimmed := strings.TrimSpace(phone)
	if !phoneNumberRegexp.MatchString(trimmed) {
		return "", newValidationError(ErrInvalidFormat, MsgPhoneNumberFormat)
	}
	return trimmed, nil
}

func validateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if !emailRegexp.MatchString(trimmed) {
		return "", newValidationError(ErrInvalidFormat, MsgEmailFormat)
	}
	return strings.ToLower(trimmed), nil
}

func flexToString(s *models.FlexString) *string {
	if s == nil {
		return nil
	}
	str := s.String()
	return &str
}
