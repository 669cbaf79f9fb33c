package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCustomerNotFound is returned when a lookup, update or delete targets
	// a customer id that matches no row.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrAddressNotFound is returned when an update or delete targets an
	// address id that matches no row.
	ErrAddressNotFound = errors.New("address was not found")

	// ErrPhoneAlreadyExists is returned when a customer write collides with
	// the unique phone number of another customer.
	ErrPhoneAlreadyExists = errors.New("phone number already exists")

	// ErrEmailAlreadyExists is returned when a customer write collides with
	// the unique email of another customer.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. Every one of them satisfies [IsStoreError].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrConstraintViolation is returned when a write breaks an integrity
	// constraint that has no dedicated sentinel (foreign key, not null, check,
	// or a unique column other than phone and email).
	ErrConstraintViolation = errors.New("constraint violation")
)

var storeErrors = []error{
	ErrBuildingSQLQuery,
	ErrExecutingQuery,
	ErrExecutingStatement,
	ErrScanningRow,
	ErrScanningRows,
	ErrConstraintViolation,
}

// IsStoreError reports whether err originates from a failed database
// operation rather than from a missing row or a known uniqueness conflict.
func IsStoreError(err error) bool {
	for _, target := range storeErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
