package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

// Share represents the calculated portion of a split for one person.
type Share struct {
	UserID  string
	Amount  decimal.Decimal
	Creator bool
}

// CalculateShares splits total equally between the creator and participants.
//
// Algorithm:
//   - n = len(participants) + 1
//   - share = total / n rounded half-up to cents
//   - creator amount = total - (n-1) * share, so the residual cent(s) land on
//     the creator and the amounts always sum exactly to total
//
// The creator's share comes first, then participants in the given order.
// Participants must be non-empty, unique and must not include the creator.
func CalculateShares(total decimal.Decimal, creatorID string, participants []string) ([]Share, error) {
	if !total.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if creatorID == "" || len(participants) == 0 {
		return nil, models.ErrMissingField
	}

	seen := map[string]bool{creatorID: true}
	for _, p := range participants {
		if p == "" {
			return nil, models.ErrMissingField
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: %s", models.ErrDuplicateParticipant, p)
		}
		seen[p] = true
	}

	n := decimal.NewFromInt(int64(len(participants) + 1))
	share := total.DivRound(n, 2)
	remainder := total.Sub(share.Mul(n))
	creatorAmount := share.Add(remainder)

	// Rounding every participant up can leave nothing for the creator when
	// the total is only a few cents
	if creatorAmount.IsNegative() {
		return nil, fmt.Errorf("%w: %s is too small to split %s ways", models.ErrInvalidAmount, total, n)
	}

	shares := make([]Share, 0, len(participants)+1)
	shares = append(shares, Share{UserID: creatorID, Amount: creatorAmount, Creator: true})
	for _, p := range participants {
		shares = append(shares, Share{UserID: p, Amount: share})
	}

	return shares, nil
}
