package intake

import (
	"context"
	"log/slog"

	"github.com/hafizn/kirimbot/internal/database"
)

// Remover deletes stored records, one by id or all at once.
type Remover interface {
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// StoreRemover deletes records directly from storage, bypassing the API.
type StoreRemover struct {
	store database.Store
}

// NewStoreRemover creates a direct-storage Remover.
func NewStoreRemover(store database.Store) *StoreRemover {
	return &StoreRemover{store: store}
}

func (r *StoreRemover) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteCustomer(ctx, id)
}

func (r *StoreRemover) DeleteAll(ctx context.Context) error {
	return r.store.DeleteAllCustomers(ctx)
}

// FallbackRemover tries the primary Remover first and falls back to the
// secondary when the primary fails, mirroring FallbackSource for the
// admin delete path.
type FallbackRemover struct {
	primary  Remover
	fallback Remover
	log      *slog.Logger
}

// NewFallbackRemover combines two Removers with a primary-then-fallback
// policy.
func NewFallbackRemover(primary, fallback Remover, log *slog.Logger) *FallbackRemover {
	if log == nil {
		log = slog.Default()
	}
	return &FallbackRemover{
		primary:  primary,
		fallback: fallback,
		log:      log.With("component", "fallback_remover"),
	}
}

func (f *FallbackRemover) Delete(ctx context.Context, id int64) error {
	err := f.primary.Delete(ctx, id)
	if err == nil {
		return nil
	}

	f.log.WarnContext(ctx, "Primary remover failed, using fallback", "id", id, "error", err)
	return f.fallback.Delete(ctx, id)
}

func (f *FallbackRemover) DeleteAll(ctx context.Context) error {
	err := f.primary.DeleteAll(ctx)
	if err == nil {
		return nil
	}

	f.log.WarnContext(ctx, "Primary remover failed, using fallback", "error", err)
	return f.fallback.DeleteAll(ctx)
}
