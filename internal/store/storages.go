package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
)

// Storages bundles the repositories over one database pool.
type Storages struct {
	CustomerRepository CustomerRepository
	AddressRepository  AddressRepository

	// DB is exposed for health checks and shutdown.
	DB *DB
}

// NewStorages connects to the configured database, brings its schema up to
// date and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error initializing database schema")
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("driver", db.Dialect()).Msg("database schema initialized successfully")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		AddressRepository:  NewAddressRepository(db, log),
		DB:                 db,
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
