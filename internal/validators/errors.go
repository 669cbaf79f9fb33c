package validators

import "errors"

// Validation failure kinds. Every [ValidationError] unwraps to exactly one of
// them, so callers can match with [errors.Is].
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidLength    = errors.New("invalid field length")
	ErrInvalidFormat    = errors.New("invalid field format")
	ErrNoFieldsProvided = errors.New("no fields provided")
)

// Human-readable validation messages returned to clients.
const (
	MsgCustomerFieldsRequired = "First name, last name, and phone number are required"
	MsgFirstNameLength        = "First name must be between 2 and 50 characters"
	MsgLastNameLength         = "Last name must be between 2 and 50 characters"
	MsgPhoneNumberFormat      = "Phone number must be exactly 10 digits"
	MsgEmailFormat            = "Please provide a valid email address"
	MsgNoCustomerFields       = "At least one field (first_name, last_name, phone_number, email) must be provided for update"

	MsgAddressFieldsRequired = "Customer ID, address details, city, state, and PIN code are required"
	MsgCustomerIDFormat      = "Customer ID must be a positive integer"
	MsgAddressDetailsLength  = "Address details must be between 10 and 500 characters"
	MsgCityLength            = "City name must be between 2 and 100 characters"
	MsgStateLength           = "State name must be between 2 and 100 characters"
	MsgPinCodeFormat         = "PIN code must be exactly 6 digits"
	MsgCountryLength         = "Country name must be between 2 and 100 characters"
)

// ValidationError is a named validation failure.
type ValidationError struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error

	// Message is safe to show to the client.
	Message string

	// MissingFields is only set for [ErrMissingFields] and maps every
	// required field name to whether it was absent.
	MissingFields map[string]bool
}

func newValidationError(kind error, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the failure kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
