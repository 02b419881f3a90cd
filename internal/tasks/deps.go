// Package tasks implements the scheduled background jobs and the gocron
// scheduler that runs them.
package tasks

import (
	"log/slog"

	"github.com/hafizn/kirimbot/internal/database"
)

// TaskDeps contains the dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
}
