package storage

import (
	"context"
	"fmt"

	"github.com/mmynk/qattah/internal/models"
)

// ScanAll walks every page of a filtered scan, calling fn for each
// transaction, until the store reports no continuation token.
// A non-nil error from fn stops the walk and is returned unchanged.
func ScanAll(ctx context.Context, store TransactionStore, filter TransactionFilter, pageSize int, fn func(*models.Transaction) error) error {
	req := PageRequest{Limit: pageSize}
	for {
		page, err := store.ScanTransactions(ctx, filter, req)
		if err != nil {
			return fmt.Errorf("failed to scan transactions: %w", err)
		}
		for _, tx := range page.Items {
			if err := fn(tx); err != nil {
				return err
			}
		}
		if page.NextToken == "" {
			return nil
		}
		req.Token = page.NextToken
	}
}

// CollectAll returns every transaction matching filter.
func CollectAll(ctx context.Context, store TransactionStore, filter TransactionFilter, pageSize int) ([]*models.Transaction, error) {
	var all []*models.Transaction
	err := ScanAll(ctx, store, filter, pageSize, func(tx *models.Transaction) error {
		all = append(all, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// Matches reports whether tx satisfies filter.
// Backends push filters into their queries; this is for callers that hold
// transactions in memory.
func (f TransactionFilter) Matches(tx *models.Transaction) bool {
	if f.UserID != "" && tx.UserID != f.UserID {
		return false
	}
	if f.CameFrom != "" && tx.CameFrom != f.CameFrom {
		return false
	}
	if f.Title != "" && tx.Title != f.Title {
		return false
	}
	if f.Date != "" && tx.Date != f.Date {
		return false
	}
	if f.DateFrom != "" && tx.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && tx.Date > f.DateTo {
		return false
	}
	return true
}

// Size returns the effective page size.
func (p PageRequest) Size() int {
	if p.Limit <= 0 {
		return DefaultPageSize
	}
	return p.Limit
}
