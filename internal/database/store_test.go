package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewStore(db, nil), mock
}

func TestSaveCustomer(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Budi", "08123456789", "Jl. Merdeka 10", "2025-09-27 17:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	customer := &Customer{
		Name:         "Budi",
		Phone:        "08123456789",
		Address:      "Jl. Merdeka 10",
		DeliveryDate: "2025-09-27 17:00",
	}
	require.NoError(t, store.SaveCustomer(context.Background(), customer))
	assert.Equal(t, int64(7), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCustomerRejectsEmptyFields(t *testing.T) {
	store, mock := newMockStore(t)

	customers := []*Customer{
		nil,
		{Phone: "08123456789", Address: "a", DeliveryDate: "2025-09-27 17:00"},
		{Name: "Budi", Address: "a", DeliveryDate: "2025-09-27 17:00"},
		{Name: "Budi", Phone: "08123456789", DeliveryDate: "2025-09-27 17:00"},
		{Name: "Budi", Phone: "08123456789", Address: "a"},
	}

	for _, c := range customers {
		assert.Error(t, store.SaveCustomer(context.Background(), c))
	}

	// Validation failures must not touch the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCustomerStorageError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnError(errors.New("connection refused"))

	err := store.SaveCustomer(context.Background(), &Customer{
		Name:         "Budi",
		Phone:        "08123456789",
		Address:      "Jl. Merdeka 10",
		DeliveryDate: "2025-09-27 17:00",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCustomers(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "address", "delivery_date"}).
		AddRow(int64(2), "Siti", "08987654321", "Jl. Sudirman 5", "2025-10-01 10:00").
		AddRow(int64(1), "Budi", "08123456789", "Jl. Merdeka 10", "2025-09-27 17:00")

	mock.ExpectQuery(`SELECT id, name, phone, address, delivery_date`).
		WillReturnRows(rows)

	customers, err := store.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, int64(2), customers[0].ID)
	assert.Equal(t, "Budi", customers[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCustomersEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name, phone, address, delivery_date`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "delivery_date"}))

	customers, err := store.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestDeleteCustomerMissingIDSucceeds(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM customers WHERE`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.DeleteCustomer(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCustomer(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM customers WHERE`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.DeleteCustomer(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllCustomers(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM customers`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, store.DeleteAllCustomers(context.Background()))

	mock.ExpectExec(`DELETE FROM customers`).
		WillReturnError(errors.New("query error"))

	assert.Error(t, store.DeleteAllCustomers(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountCustomers(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := store.CountCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
