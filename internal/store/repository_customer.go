package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
)

const (
	columnPhoneNumber = "phone_number"
	columnEmail       = "email"
)

// customerRepository is the SQL implementation of [CustomerRepository]
// against the "customers" and "addresses" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) ListCustomers(ctx context.Context, q models.CustomerListQuery) ([]models.CustomerListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListCustomersQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.CustomerListItem, 0)
	for rows.Next() {
		var c models.CustomerListItem
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &c.CreatedAt, &c.UpdatedAt, &c.AddressCount, &c.Cities); err != nil {
			log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

func (r *customerRepository) CountCustomers(ctx context.Context, q models.CustomerListQuery) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCountCustomersQuery(q)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CountCustomers").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*customerRepository.CountCustomers").Msg("error counting customers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindCustomerQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindCustomerByID").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Customer
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Customer{}, ErrCustomerNotFound
	case err != nil:
		log.Err(err).Str("func", "*customerRepository.FindCustomerByID").Msg("error scanning row")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.NewCustomer) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertCustomerQuery(customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error inserting customer")
		return 0, r.writeError(err)
	}

	return id, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, update models.CustomerUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateCustomerQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdateCustomer").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.UpdateCustomer").Msg("error updating customer")
		return r.writeError(err)
	}

	return affectedOrNotFound(result, ErrCustomerNotFound)
}

// DeleteCustomer removes the customer; the schema cascades the delete to
// its addresses.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteCustomerQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Msg("error deleting customer")
		return r.db.statementError(err)
	}

	return affectedOrNotFound(result, ErrCustomerNotFound)
}

// writeError maps uniqueness conflicts on phone and email to their
// sentinels. Both the sentinel and the driver error stay in the chain.
func (r *customerRepository) writeError(err error) error {
	classified := r.db.classify(err)
	if classified.Class == UniqueViolation {
		switch classified.Column {
		case columnPhoneNumber:
			return fmt.Errorf("%w: %w", ErrPhoneAlreadyExists, err)
		case columnEmail:
			return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
	}

	return r.db.statementError(err)
}
