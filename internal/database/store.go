package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for customer record operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveCustomer inserts a new customer record and fills in the
	// server-assigned ID. All four business fields must be non-empty;
	// normalization must already have happened upstream.
	SaveCustomer(ctx context.Context, customer *Customer) error

	// ListCustomers returns all stored records, newest first by ID.
	// An empty table yields an empty slice, not an error.
	ListCustomers(ctx context.Context) ([]Customer, error)

	// DeleteCustomer removes one record by ID. Deleting a nonexistent
	// ID succeeds; the zero-rows case is logged for observability.
	DeleteCustomer(ctx context.Context, id int64) error

	// DeleteAllCustomers removes every stored record.
	DeleteAllCustomers(ctx context.Context) error

	// CountCustomers returns the number of stored records.
	CountCustomers(ctx context.Context) (int64, error)
}

// sqlxStore provides an implementation of the Store interface using sqlx.
// Each operation checks a connection out of the pool for its own
// statement and returns it on every exit path.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveCustomer inserts a new customer record.
func (s *sqlxStore) SaveCustomer(ctx context.Context, customer *Customer) error {
	if customer == nil {
		return fmt.Errorf("cannot save nil customer")
	}
	if customer.Name == "" {
		return fmt.Errorf("customer must have a non-empty name")
	}
	if customer.Phone == "" {
		return fmt.Errorf("customer must have a non-empty phone")
	}
	if customer.Address == "" {
		return fmt.Errorf("customer must have a non-empty address")
	}
	if customer.DeliveryDate == "" {
		return fmt.Errorf("customer must have a non-empty delivery date")
	}

	const query = `
		INSERT INTO customers (name, phone, address, delivery_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := s.db.QueryRowxContext(ctx, query,
		customer.Name, customer.Phone, customer.Address, customer.DeliveryDate)
	if err := row.Scan(&customer.ID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert customer", "error", err)
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Customer saved", "id", customer.ID)
	return nil
}

// ListCustomers retrieves all customer records, newest first.
func (s *sqlxStore) ListCustomers(ctx context.Context) ([]Customer, error) {
	const query = `
		SELECT id, name, phone, address, delivery_date
		FROM customers
		ORDER BY id DESC`

	customers := []Customer{}
	if err := s.db.SelectContext(ctx, &customers, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// DeleteCustomer removes one customer record by ID.
func (s *sqlxStore) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete customer", "id", id, "error", err)
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		// Idempotent delete: missing IDs are not an error, but worth seeing.
		s.logger.InfoContext(ctx, "Delete matched no rows", "id", id)
	}

	return nil
}

// DeleteAllCustomers removes every customer record.
func (s *sqlxStore) DeleteAllCustomers(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete all customers", "error", err)
		return fmt.Errorf("failed to delete all customers: %w", err)
	}

	s.logger.InfoContext(ctx, "All customers deleted")
	return nil
}

// CountCustomers returns the number of stored customer records.
func (s *sqlxStore) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
