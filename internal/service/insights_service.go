package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/internal/calculator"
	"github.com/mmynk/qattah/internal/ledger"
	"github.com/mmynk/qattah/internal/metrics"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/internal/storage"
	"github.com/mmynk/qattah/pkg/api"
	"github.com/mmynk/qattah/pkg/api/apiconnect"
)

var _ apiconnect.InsightsServiceHandler = (*InsightsService)(nil)

// InsightsService implements spending summaries and plan generation.
type InsightsService struct {
	analyzer *ledger.Analyzer
	metrics  *metrics.Metrics
}

// NewInsightsService creates an InsightsService reading from store.
func NewInsightsService(store storage.TransactionStore, cfg ledger.Config, m *metrics.Metrics) *InsightsService {
	return &InsightsService{analyzer: ledger.NewAnalyzer(store, cfg), metrics: m}
}

// GetSpendingSummary returns each category's share of the user's spending.
// A user with no spending gets an empty map.
func (s *InsightsService) GetSpendingSummary(ctx context.Context, req *connect.Request[api.SpendingSummaryRequest]) (*connect.Response[api.SpendingSummary], error) {
	summary, err := s.analyzer.Summarize(ctx, req.Msg.UserID, ledger.DateRange{From: req.Msg.From, To: req.Msg.To})
	if err != nil {
		slog.Warn("GetSpendingSummary failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connectError(err)
	}

	s.metrics.AnalysisRun()
	result := api.SpendingSummary(calculator.Percentages(summary))
	return connect.NewResponse(&result), nil
}

// GeneratePlan builds a recommendation set from the user's spending.
// Unknown plan types yield the generic welcome message and no suggestions.
func (s *InsightsService) GeneratePlan(ctx context.Context, req *connect.Request[api.GeneratePlanRequest]) (*connect.Response[api.GeneratePlanResponse], error) {
	if req.Msg.PlanType == "" {
		return nil, connectError(fmt.Errorf("%w: planType", models.ErrMissingField))
	}

	planType := calculator.PlanType(req.Msg.PlanType)
	if !planType.Valid() {
		slog.Debug("Unknown plan type", "plan_type", req.Msg.PlanType)
	}

	plan, summary, err := s.analyzer.Plan(ctx, req.Msg.UserID, planType, ledger.DateRange{From: req.Msg.From, To: req.Msg.To})
	if err != nil {
		slog.Warn("GeneratePlan failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connectError(err)
	}

	s.metrics.AnalysisRun()
	return connect.NewResponse(toAPIPlan(plan, calculator.FormatDollars(summary.Total))), nil
}
