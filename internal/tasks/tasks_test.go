package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizn/kirimbot/internal/database"
)

type fakeStore struct {
	database.Store

	customers []database.Customer
	err       error
}

func (f *fakeStore) ListCustomers(context.Context) ([]database.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterAllTasksIncludesSummaryReport(t *testing.T) {
	tasks := RegisterAllTasks(TaskDeps{Logger: discardLogger(), Store: &fakeStore{}})

	require.Contains(t, tasks, "summary_report")
	assert.NotNil(t, tasks["summary_report"])
}

func TestSummaryReportTask(t *testing.T) {
	store := &fakeStore{customers: []database.Customer{
		{ID: 1, Name: "Budi", Phone: "08123456789", Address: "Jl. Merdeka 10", DeliveryDate: "2025-09-27 17:00"},
	}}
	task := newSummaryReportTask(TaskDeps{Logger: discardLogger(), Store: store})

	assert.NoError(t, task(context.Background()))
}

func TestSummaryReportTaskPropagatesStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	task := newSummaryReportTask(TaskDeps{Logger: discardLogger(), Store: store})

	err := task(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
