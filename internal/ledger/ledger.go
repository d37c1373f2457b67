// Package ledger implements the split-expense and spending-analysis engines
// on top of storage.TransactionStore.
//
//   - Allocator turns one shared expense into a split group: one entry per
//     participant plus the creator, written creator first.
//   - PaymentLedger settles a single entry, guarded by the store's
//     conditional write on ownership.
//   - Analyzer aggregates a user's entries by category across every page
//     of the store's scan.
//
// Store failures other than models.ErrNotFound and models.ErrUnauthorized are
// returned wrapping models.ErrDependency.
package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// DefaultSplitCategory is the reserved category of a split request.
const DefaultSplitCategory = "Qattah"

// Config holds the engine settings shared by the ledger components.
type Config struct {
	// SplitCategory is compared case-insensitively with a split request's category.
	SplitCategory string

	// PageSize is the scan page size; zero uses storage.DefaultPageSize.
	PageSize int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		SplitCategory: DefaultSplitCategory,
		PageSize:      storage.DefaultPageSize,
	}
}

func (c Config) withDefaults() Config {
	if c.SplitCategory == "" {
		c.SplitCategory = DefaultSplitCategory
	}
	if c.PageSize <= 0 {
		c.PageSize = storage.DefaultPageSize
	}
	return c
}

// dependency wraps a store failure as models.ErrDependency unless it already
// carries a domain error the caller must see.
func dependency(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrUnauthorized) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrDependency, err)
}
