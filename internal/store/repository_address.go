package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// addressRepository is the SQL implementation of [AddressRepository].
type addressRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *addressRepository) ListAddressesByCustomer(ctx context.Context, customerID int64, order AddressOrder) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListAddressesQuery(customerID, order)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddressesByCustomer").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddressesByCustomer").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode, &a.Country, &a.IsPrimary, &a.CreatedAt); err != nil {
			log.Err(err).Str("func", "*addressRepository.ListAddressesByCustomer").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddressesByCustomer").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}

// CreateAddress returns the store-assigned id. A customer id that matches
// no customer fails with [ErrConstraintViolation].
func (r *addressRepository) CreateAddress(ctx context.Context, address models.NewAddress) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertAddressQuery(address)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Msg("error inserting address")
		return 0, r.db.statementError(err)
	}

	return id, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, update models.AddressUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateAddressQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Msg("error updating address")
		return r.db.statementError(err)
	}

	return affectedOrNotFound(result, ErrAddressNotFound)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteAddressQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Msg("error deleting address")
		return r.db.statementError(err)
	}

	return affectedOrNotFound(result, ErrAddressNotFound)
}
