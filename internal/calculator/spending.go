package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Summary is a user's spending aggregated by category.
type Summary struct {
	ByCategory map[string]decimal.Decimal
	Total      decimal.Decimal
}

// NewSummary returns an empty summary ready for Add.
func NewSummary() *Summary {
	return &Summary{ByCategory: make(map[string]decimal.Decimal)}
}

// Add folds one transaction into the summary.
func (s *Summary) Add(tx *models.Transaction) {
	s.ByCategory[tx.Category] = s.ByCategory[tx.Category].Add(tx.Amount)
	s.Total = s.Total.Add(tx.Amount)
}

// Summarize aggregates transactions by category.
func Summarize(txs []*models.Transaction) *Summary {
	s := NewSummary()
	for _, tx := range txs {
		s.Add(tx)
	}
	return s
}

// Percentage returns amount as a percentage of total.
// A zero total yields zero instead of dividing by it.
func Percentage(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(total)
}

// Percentages formats each category's share of the total as "NN.NN%".
// An empty or zero-total summary produces an empty map.
func Percentages(s *Summary) map[string]string {
	out := make(map[string]string, len(s.ByCategory))
	if s.Total.IsZero() {
		return out
	}
	for category, amount := range s.ByCategory {
		out[category] = Percentage(amount, s.Total).StringFixed(2) + "%"
	}
	return out
}
