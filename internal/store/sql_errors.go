package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the kind of constraint a failed statement violated.
type ErrorClassification int

const (
	// Unclassified is returned for errors that are not constraint violations
	// or that come from an unknown driver.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a UNIQUE constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing parent row.
	ForeignKeyViolation

	// NotNullViolation indicates a NULL written into a NOT NULL column.
	NotNullViolation

	// CheckViolation indicates any other integrity constraint failure.
	CheckViolation
)

// DriverError is the classified view of a driver level error.
type DriverError struct {
	Class ErrorClassification

	// Column is the violated column, without the table name, when the driver
	// reports it. Only unique violations carry it.
	Column string
}

// ErrorClassificator maps raw driver errors to a [DriverError].
type ErrorClassificator interface {
	Classify(err error) DriverError
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify inspects the extended result code of a sqlite3.Error. The
// violated column is parsed from messages of the form
// "UNIQUE constraint failed: customers.phone_number".
func (c *SQLiteErrorClassifier) Classify(err error) DriverError {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return DriverError{Class: Unclassified}
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return DriverError{Class: UniqueViolation, Column: sqliteConstraintColumn(sqliteErr.Error())}
	case sqlite3.ErrConstraintForeignKey:
		return DriverError{Class: ForeignKeyViolation}
	case sqlite3.ErrConstraintNotNull:
		return DriverError{Class: NotNullViolation}
	default:
		return DriverError{Class: CheckViolation}
	}
}

func sqliteConstraintColumn(msg string) string {
	_, columns, found := strings.Cut(msg, "constraint failed: ")
	if !found {
		return ""
	}
	first, _, _ := strings.Cut(columns, ",")
	if _, column, ok := strings.Cut(strings.TrimSpace(first), "."); ok {
		return column
	}
	return strings.TrimSpace(first)
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) DriverError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return DriverError{Class: Unclassified}
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a Class 23 (integrity constraint violation) code to
// an [ErrorClassification]. Unique violations report the column encoded in
// the constraint name ("customers_phone_number_key" → "phone_number").
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) DriverError {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		column := pgErr.ColumnName
		if column == "" {
			column = strings.TrimSuffix(pgErr.ConstraintName, "_key")
			if pgErr.TableName != "" {
				column = strings.TrimPrefix(column, pgErr.TableName+"_")
			} else {
				_, column, _ = strings.Cut(column, "_")
			}
		}
		return DriverError{Class: UniqueViolation, Column: column}
	case pgerrcode.ForeignKeyViolation:
		return DriverError{Class: ForeignKeyViolation}
	case pgerrcode.NotNullViolation:
		return DriverError{Class: NotNullViolation}
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.CheckViolation,
		pgerrcode.ExclusionViolation:
		return DriverError{Class: CheckViolation}
	}

	return DriverError{Class: Unclassified}
}
