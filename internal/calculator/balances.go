package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

// MemberBalance represents one member's entry in a split group.
type MemberBalance struct {
	UserID        string
	TransactionID string
	Amount        decimal.Decimal
	Paid          bool
}

// GroupStatus summarizes a reconstructed split group.
type GroupStatus struct {
	Members     []MemberBalance // creator first, then by user ID
	Total       decimal.Decimal
	Settled     decimal.Decimal
	Outstanding decimal.Decimal

	// HasCreator is false when the creator's own entry was never written.
	HasCreator bool

	// Missing lists expected participants that have no entry.
	Missing []string

	// Complete is true when the creator and every expected participant have
	// an entry. Without an expected list only the creator is checked.
	Complete bool
}

// CalculateGroupStatus computes settlement totals and completeness for the
// entries of one split group.
//
// Algorithm:
//   - Total sums every entry
//   - Settled sums entries with IsPaid, Outstanding the rest
//   - Missing = expected participants without an entry
func CalculateGroupStatus(creatorID string, entries []*models.Transaction, expected []string) *GroupStatus {
	status := &GroupStatus{}
	present := make(map[string]bool, len(entries))

	for _, tx := range entries {
		present[tx.UserID] = true
		if tx.UserID == creatorID {
			status.HasCreator = true
		}

		status.Total = status.Total.Add(tx.Amount)
		if tx.Settled() {
			status.Settled = status.Settled.Add(tx.Amount)
		} else {
			status.Outstanding = status.Outstanding.Add(tx.Amount)
		}

		status.Members = append(status.Members, MemberBalance{
			UserID:        tx.UserID,
			TransactionID: tx.ID,
			Amount:        tx.Amount,
			Paid:          tx.Settled(),
		})
	}

	sort.SliceStable(status.Members, func(i, j int) bool {
		a, b := status.Members[i], status.Members[j]
		if (a.UserID == creatorID) != (b.UserID == creatorID) {
			return a.UserID == creatorID
		}
		return a.UserID < b.UserID
	})

	for _, p := range expected {
		if !present[p] {
			status.Missing = append(status.Missing, p)
		}
	}

	status.Complete = status.HasCreator && len(status.Missing) == 0
	return status
}
