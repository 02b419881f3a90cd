package intake

import (
	"context"
	"log/slog"

	"github.com/hafizn/kirimbot/internal/database"
)

// Source retrieves the stored record set, newest first.
type Source interface {
	List(ctx context.Context) ([]database.Customer, error)
}

// StoreSource reads records directly from storage, bypassing the API.
type StoreSource struct {
	store database.Store
}

// NewStoreSource creates a direct-storage Source.
func NewStoreSource(store database.Store) *StoreSource {
	return &StoreSource{store: store}
}

func (s *StoreSource) List(ctx context.Context) ([]database.Customer, error) {
	return s.store.ListCustomers(ctx)
}

// FallbackSource tries the primary Source first and falls back to the
// secondary when the primary fails. The admin listing uses this with the
// API client as primary and direct storage as fallback.
type FallbackSource struct {
	primary  Source
	fallback Source
	log      *slog.Logger
}

// NewFallbackSource combines two Sources with a primary-then-fallback
// policy.
func NewFallbackSource(primary, fallback Source, log *slog.Logger) *FallbackSource {
	if log == nil {
		log = slog.Default()
	}
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		log:      log.With("component", "fallback_source"),
	}
}

func (f *FallbackSource) List(ctx context.Context) ([]database.Customer, error) {
	customers, err := f.primary.List(ctx)
	if err == nil {
		return customers, nil
	}

	f.log.WarnContext(ctx, "Primary record source failed, using fallback", "error", err)
	return f.fallback.List(ctx)
}
