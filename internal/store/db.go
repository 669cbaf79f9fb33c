package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/migrations"
)

// DB wraps a database/sql pool together with the dialect specific pieces
// the repositories need: a placeholder format, a driver error classifier and
// the SQL for a few non-portable expressions.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or upgrades the schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the database/sql driver name the pool was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// likeOperator is the case-insensitive substring match operator. SQLite's
// LIKE already ignores ASCII case.
func (db *DB) likeOperator() string {
	if db.dialect == config.DriverPostgres {
		return "ILIKE"
	}
	return "LIKE"
}

// distinctCities aggregates the distinct address cities of a customer into a
// comma-separated string, NULL when there are none.
func (db *DB) distinctCities() string {
	if db.dialect == config.DriverPostgres {
		return "STRING_AGG(DISTINCT a.city, ',')"
	}
	return "GROUP_CONCAT(DISTINCT a.city)"
}

func (db *DB) classify(err error) DriverError {
	if db.errorClassificator == nil {
		return DriverError{Class: Unclassified}
	}
	return db.errorClassificator.Classify(err)
}

// statementError wraps a failed write with [ErrConstraintViolation] when
// the driver reports a constraint failure, [ErrExecutingStatement] otherwise.
func (db *DB) statementError(err error) error {
	if db.classify(err).Class != Unclassified {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func affectedOrNotFound(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
