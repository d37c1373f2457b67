package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/qattah/internal/calculator"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
)

// DateRange bounds an analysis. Empty bounds are open, so the zero value
// covers the full history.
type DateRange struct {
	From string
	To   string
}

// Analyzer aggregates spending per category.
type Analyzer struct {
	store    storage.TransactionStore
	pageSize int
}

// NewAnalyzer creates an Analyzer reading from store.
func NewAnalyzer(store storage.TransactionStore, cfg Config) *Analyzer {
	return &Analyzer{store: store, pageSize: cfg.withDefaults().PageSize}
}

// Summarize sums every transaction of userID within r by category.
// A user without transactions gets an empty summary.
func (a *Analyzer) Summarize(ctx context.Context, userID string, r DateRange) (*calculator.Summary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID", models.ErrMissingField)
	}

	summary := calculator.NewSummary()
	filter := storage.TransactionFilter{UserID: userID, DateFrom: r.From, DateTo: r.To}
	err := storage.ScanAll(ctx, a.store, filter, a.pageSize, func(tx *models.Transaction) error {
		summary.Add(tx)
		return nil
	})
	if err != nil {
		return nil, dependency("failed to summarize spending", err)
	}

	return summary, nil
}

// Plan summarizes userID's spending and applies the rules of planType.
func (a *Analyzer) Plan(ctx context.Context, userID string, planType calculator.PlanType, r DateRange) (*calculator.Plan, *calculator.Summary, error) {
	summary, err := a.Summarize(ctx, userID, r)
	if err != nil {
		return nil, nil, err
	}
	return calculator.GeneratePlan(planType, summary.ByCategory, summary.Total), summary, nil
}
