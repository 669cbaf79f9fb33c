package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewConnectSQLite_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "customer_management.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, config.DriverSQLite, db.Dialect())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "db.sqlite?_foreign_keys=on", sqliteDSN("db.sqlite"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "db.sqlite?_fk=1", sqliteDSN("db.sqlite?_fk=1"))
}

func TestSQLite_CustomerLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	customers, addresses := s.CustomerRepository, s.AddressRepository

	email := "jane@ex.com"
	janeID, err := customers.CreateCustomer(ctx, models.NewCustomer{FirstName: "Jane", LastName: "Doe", PhoneNumber: "9876543210", Email: &email})
	require.NoError(t, err)

	johnID, err := customers.CreateCustomer(ctx, models.NewCustomer{FirstName: "John", LastName: "Roe", PhoneNumber: "9876543211"})
	require.NoError(t, err)
	assert.Greater(t, johnID, janeID)

	// uniqueness
	_, err = customers.CreateCustomer(ctx, models.NewCustomer{FirstName: "Dup", LastName: "Phone", PhoneNumber: "9876543210"})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)

	_, err = customers.CreateCustomer(ctx, models.NewCustomer{FirstName: "Dup", LastName: "Email", PhoneNumber: "9000000000", Email: &email})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	err = customers.UpdateCustomer(ctx, models.CustomerUpdate{ID: johnID, Email: &email})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// addresses
	first, err := addresses.CreateAddress(ctx, models.NewAddress{
		CustomerID: janeID, AddressDetails: "12 MG Road, Indiranagar", City: "Bengaluru", State: "Karnataka", PinCode: "560001", Country: "India",
	})
	require.NoError(t, err)
	second, err := addresses.CreateAddress(ctx, models.NewAddress{
		CustomerID: janeID, AddressDetails: "Flat 4, Koregaon Park", City: "Pune", State: "Maharashtra", PinCode: "411001", Country: "India", IsPrimary: true,
	})
	require.NoError(t, err)

	_, err = addresses.CreateAddress(ctx, models.NewAddress{
		CustomerID: 999, AddressDetails: "Nowhere street 1", City: "Nowhere", State: "None", PinCode: "000000", Country: "India",
	})
	require.ErrorIs(t, err, ErrConstraintViolation)

	primaryFirst, err := addresses.ListAddressesByCustomer(ctx, janeID, AddressOrderPrimaryFirst)
	require.NoError(t, err)
	require.Len(t, primaryFirst, 2)
	assert.Equal(t, second, primaryFirst[0].ID)
	assert.True(t, primaryFirst[0].IsPrimary)
	assert.Equal(t, first, primaryFirst[1].ID)

	inserted, err := addresses.ListAddressesByCustomer(ctx, janeID, AddressOrderInsertion)
	require.NoError(t, err)
	assert.Equal(t, first, inserted[0].ID)

	// listing
	all, err := customers.ListCustomers(ctx, models.CustomerListQuery{Page: 1, Limit: 10, SortBy: "first_name", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "John", all[0].FirstName)
	assert.Zero(t, all[0].AddressCount)
	assert.Nil(t, all[0].Cities)
	assert.Equal(t, 2, all[1].AddressCount)
	require.NotNil(t, all[1].Cities)
	assert.ElementsMatch(t, []string{"Bengaluru", "Pune"}, strings.Split(*all[1].Cities, ","))

	byCity := models.CustomerListQuery{Page: 1, Limit: 10, City: "pun"}
	filtered, err := customers.ListCustomers(ctx, byCity)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, janeID, filtered[0].ID)

	total, err := customers.CountCustomers(ctx, byCity)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = customers.CountCustomers(ctx, models.CustomerListQuery{Search: "98765"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// update and clear email
	newName := "Janet"
	require.NoError(t, customers.UpdateCustomer(ctx, models.CustomerUpdate{ID: janeID, FirstName: &newName, ClearEmail: true}))
	jane, err := customers.FindCustomerByID(ctx, janeID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", jane.FirstName)
	assert.Equal(t, "Doe", jane.LastName)
	assert.Nil(t, jane.Email)

	// address update and delete
	require.NoError(t, addresses.UpdateAddress(ctx, models.AddressUpdate{ID: first, NewAddress: models.NewAddress{
		CustomerID: janeID, AddressDetails: "14 MG Road, Indiranagar", City: "Bengaluru", State: "Karnataka", PinCode: "560038", Country: "India", IsPrimary: true,
	}}))
	assert.ErrorIs(t, addresses.UpdateAddress(ctx, models.AddressUpdate{ID: 12345, NewAddress: models.NewAddress{CustomerID: janeID}}), ErrAddressNotFound)
	require.NoError(t, addresses.DeleteAddress(ctx, second))
	assert.ErrorIs(t, addresses.DeleteAddress(ctx, second), ErrAddressNotFound)

	// delete cascades
	require.NoError(t, customers.DeleteCustomer(ctx, janeID))
	_, err = customers.FindCustomerByID(ctx, janeID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.ErrorIs(t, customers.DeleteCustomer(ctx, janeID), ErrCustomerNotFound)
	assert.ErrorIs(t, customers.UpdateCustomer(ctx, models.CustomerUpdate{ID: janeID, FirstName: &newName}), ErrCustomerNotFound)

	orphans, err := addresses.ListAddressesByCustomer(ctx, janeID, AddressOrderInsertion)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
