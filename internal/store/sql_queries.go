package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customer-keeper/models"
)

const (
	customersTable = "customers"
	addressesTable = "addresses"
)

var customerColumns = []string{"id", "first_name", "last_name", "phone_number", "email", "created_at", "updated_at"}

var addressColumns = []string{"id", "customer_id", "address_details", "city", "state", "pin_code", "country", "is_primary", "created_at"}

// AddressOrder selects the ordering of an address listing.
type AddressOrder int

const (
	// AddressOrderInsertion lists addresses in the order they were created.
	AddressOrderInsertion AddressOrder = iota

	// AddressOrderPrimaryFirst lists primary addresses first, then the rest
	// by creation time.
	AddressOrderPrimaryFirst
)

func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// customerFilters renders the optional listing filters as a conjunction.
// Empty filters are skipped, so no filters yields an empty sq.And which
// squirrel omits from the WHERE clause.
func (db *DB) customerFilters(q models.CustomerListQuery) sq.And {
	like := db.likeOperator()
	pred := sq.And{}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		pred = append(pred, sq.Or{
			sq.Expr("c.first_name "+like+" ?", pattern),
			sq.Expr("c.last_name "+like+" ?", pattern),
			sq.Expr("c.phone_number "+like+" ?", pattern),
			sq.Expr("c.email "+like+" ?", pattern),
		})
	}
	if q.City != "" {
		pred = append(pred, sq.Expr("a.city "+like+" ?", "%"+q.City+"%"))
	}
	if q.State != "" {
		pred = append(pred, sq.Expr("a.state "+like+" ?", "%"+q.State+"%"))
	}
	if q.PinCode != "" {
		pred = append(pred, sq.Expr("a.pin_code "+like+" ?", "%"+q.PinCode+"%"))
	}

	return pred
}

// buildListCustomersQuery selects one page of customers joined to their
// address aggregates. LIMIT and OFFSET are bound as given, negative values
// included.
func (db *DB) buildListCustomersQuery(q models.CustomerListQuery) (string, []any, error) {
	columns := append(qualified("c", customerColumns),
		"COUNT(a.id) AS address_count",
		db.distinctCities()+" AS cities",
	)

	query := db.builder().
		Select(columns...).
		From(customersTable + " c").
		LeftJoin(addressesTable + " a ON c.id = a.customer_id")

	if filters := db.customerFilters(q); len(filters) > 0 {
		query = query.Where(filters)
	}

	return query.
		GroupBy("c.id").
		OrderBy("c." + q.SortField() + " " + q.SortDirection()).
		Suffix("LIMIT ? OFFSET ?", q.Limit, q.Offset()).
		ToSql()
}

// buildCountCustomersQuery counts the distinct customers matching the same
// filters as [DB.buildListCustomersQuery].
func (db *DB) buildCountCustomersQuery(q models.CustomerListQuery) (string, []any, error) {
	query := db.builder().
		Select("COUNT(DISTINCT c.id) AS total").
		From(customersTable + " c").
		LeftJoin(addressesTable + " a ON c.id = a.customer_id")

	if filters := db.customerFilters(q); len(filters) > 0 {
		query = query.Where(filters)
	}

	return query.ToSql()
}

func (db *DB) buildFindCustomerQuery(id int64) (string, []any, error) {
	return db.builder().
		Select(customerColumns...).
		From(customersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildInsertCustomerQuery(c models.NewCustomer) (string, []any, error) {
	return db.builder().
		Insert(customersTable).
		Columns("first_name", "last_name", "phone_number", "email").
		Values(c.FirstName, c.LastName, c.PhoneNumber, c.Email).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateCustomerQuery sets only the columns present in u and always
// refreshes updated_at.
func (db *DB) buildUpdateCustomerQuery(u models.CustomerUpdate) (string, []any, error) {
	query := db.builder().Update(customersTable)

	if u.FirstName != nil {
		query = query.Set("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		query = query.Set("last_name", *u.LastName)
	}
	if u.PhoneNumber != nil {
		query = query.Set("phone_number", *u.PhoneNumber)
	}
	switch {
	case u.Email != nil:
		query = query.Set("email", *u.Email)
	case u.ClearEmail:
		query = query.Set("email", nil)
	}

	return query.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

func (db *DB) buildDeleteCustomerQuery(id int64) (string, []any, error) {
	return db.builder().
		Delete(customersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildListAddressesQuery(customerID int64, order AddressOrder) (string, []any, error) {
	query := db.builder().
		Select(addressColumns...).
		From(addressesTable).
		Where(sq.Eq{"customer_id": customerID})

	switch order {
	case AddressOrderPrimaryFirst:
		query = query.OrderBy("is_primary DESC", "created_at ASC", "id ASC")
	default:
		query = query.OrderBy("id ASC")
	}

	return query.ToSql()
}

func (db *DB) buildInsertAddressQuery(a models.NewAddress) (string, []any, error) {
	return db.builder().
		Insert(addressesTable).
		Columns("customer_id", "address_details", "city", "state", "pin_code", "country", "is_primary").
		Values(a.CustomerID, a.AddressDetails, a.City, a.State, a.PinCode, a.Country, a.IsPrimary).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateAddressQuery replaces every editable column. The owning
// customer never changes.
func (db *DB) buildUpdateAddressQuery(u models.AddressUpdate) (string, []any, error) {
	return db.builder().
		Update(addressesTable).
		Set("address_details", u.AddressDetails).
		Set("city", u.City).
		Set("state", u.State).
		Set("pin_code", u.PinCode).
		Set("country", u.Country).
		Set("is_primary", u.IsPrimary).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

func (db *DB) buildDeleteAddressQuery(id int64) (string, []any, error) {
	return db.builder().
		Delete(addressesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
