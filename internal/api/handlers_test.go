package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizn/kirimbot/internal/database"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	customers []database.Customer
	nextID    int64
	failWith  error
}

func (f *fakeStore) Ping(context.Context) error { return f.failWith }

func (f *fakeStore) SaveCustomer(_ context.Context, c *database.Customer) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	c.ID = f.nextID
	f.customers = append([]database.Customer{*c}, f.customers...)
	return nil
}

func (f *fakeStore) ListCustomers(context.Context) ([]database.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.customers, nil
}

func (f *fakeStore) DeleteCustomer(_ context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, c := range f.customers {
		if c.ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) DeleteAllCustomers(context.Context) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.customers = nil
	return nil
}

func (f *fakeStore) CountCustomers(context.Context) (int64, error) {
	return int64(len(f.customers)), f.failWith
}

func newTestServer(store database.Store) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, store)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	rec := doRequest(t, newTestServer(&fakeStore{}), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestSaveCustomerThenList(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(store)

	body := `{"name":"Budi","phone":"08123456789","address":"Jl. Merdeka 10","delivery_date":"2025-09-27 17:00"}`
	rec := doRequest(t, srv, http.MethodPost, "/save_customer/", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/customers/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var customers []database.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Budi", customers[0].Name)
	assert.Equal(t, int64(1), customers[0].ID)
}

func TestSaveCustomerMissingField(t *testing.T) {
	rec := doRequest(t, newTestServer(&fakeStore{}), http.MethodPost, "/save_customer/",
		`{"name":"Budi","phone":"08123456789","address":"Jl. Merdeka 10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
}

func TestSaveCustomerStorageFailure(t *testing.T) {
	store := &fakeStore{failWith: errors.New("connection refused")}
	body := `{"name":"Budi","phone":"08123456789","address":"Jl. Merdeka 10","delivery_date":"2025-09-27 17:00"}`

	rec := doRequest(t, newTestServer(store), http.MethodPost, "/save_customer/", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestListCustomersEmpty(t *testing.T) {
	rec := doRequest(t, newTestServer(&fakeStore{}), http.MethodGet, "/customers/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteCustomer(t *testing.T) {
	store := &fakeStore{
		customers: []database.Customer{{ID: 1, Name: "Budi"}},
		nextID:    1,
	}
	srv := newTestServer(store)

	rec := doRequest(t, srv, http.MethodDelete, "/customers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.customers)

	// Deleting an ID that no longer exists is still a success.
	rec = doRequest(t, srv, http.MethodDelete, "/customers/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/customers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAllCustomers(t *testing.T) {
	store := &fakeStore{
		customers: []database.Customer{{ID: 1}, {ID: 2}},
		nextID:    2,
	}

	rec := doRequest(t, newTestServer(store), http.MethodDelete, "/customers/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.customers)
}
