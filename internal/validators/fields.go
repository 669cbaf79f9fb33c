package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names as they appear in request bodies and in the missing_fields map.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"

	FieldCustomerID     = "customer_id"
	FieldAddressDetails = "address_details"
	FieldCity           = "city"
	FieldState          = "state"
	FieldPinCode        = "pin_code"
	FieldCountry        = "country"
)

// Length bounds, counted in characters after trimming.
const (
	nameMinLength = 2
	nameMaxLength = 50

	addressDetailsMinLength = 10
	addressDetailsMaxLength = 500

	placeMinLength = 2
	placeMaxLength = 100
)

var (
	phoneNumberRegexp = regexp.MustCompile(`^[0-9]{10}$`)
	pinCodeRegexp     = regexp.MustCompile(`^[0-9]{6}$`)
	emailRegexp       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// isBlank reports whether a field is absent: not sent, null or empty.
func isBlank(s *string) bool {
	return s == nil || *s == ""
}

// lengthBetween trims s and reports whether its character count is within
// [lo, hi]. The trimmed value is returned either way.
func lengthBetween(s string, lo, hi int) (string, bool) {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	return trimmed, n >= lo && n <= hi
}
