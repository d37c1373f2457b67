package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/pkg/api"
)

func seedSpending(t *testing.T, c *testClients, userID string, entries map[string]int64) {
	t.Helper()
	for category, amount := range entries {
		_, err := c.account.CreateTransaction(context.Background(), connect.NewRequest(&api.CreateTransactionRequest{
			Amount:   decimal.NewFromInt(amount),
			Category: category,
			Date:     "2024-04-01",
			Title:    category,
			UserID:   userID,
		}))
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}
}

func TestGetSpendingSummary(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	seedSpending(t, c, "alice", map[string]int64{"Food": 600, "Rent": 300, "Fun": 100})

	resp, err := c.insights.GetSpendingSummary(ctx, connect.NewRequest(&api.SpendingSummaryRequest{UserID: "alice"}))
	if err != nil {
		t.Fatalf("GetSpendingSummary failed: %v", err)
	}
	summary := *resp.Msg
	want := api.SpendingSummary{"Food": "60.00%", "Rent": "30.00%", "Fun": "10.00%"}
	for category, pct := range want {
		if summary[category] != pct {
			t.Errorf("%s = %q, want %q", category, summary[category], pct)
		}
	}

	t.Run("no data is empty", func(t *testing.T) {
		resp, err := c.insights.GetSpendingSummary(ctx, connect.NewRequest(&api.SpendingSummaryRequest{UserID: "nobody"}))
		if err != nil {
			t.Fatalf("GetSpendingSummary failed: %v", err)
		}
		if len(*resp.Msg) != 0 {
			t.Errorf("expected empty summary, got %v", *resp.Msg)
		}
	})

	t.Run("date range excludes everything", func(t *testing.T) {
		resp, err := c.insights.GetSpendingSummary(ctx, connect.NewRequest(&api.SpendingSummaryRequest{
			UserID: "alice", From: "2025-01-01",
		}))
		if err != nil {
			t.Fatalf("GetSpendingSummary failed: %v", err)
		}
		if len(*resp.Msg) != 0 {
			t.Errorf("expected empty summary, got %v", *resp.Msg)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := c.insights.GetSpendingSummary(ctx, connect.NewRequest(&api.SpendingSummaryRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGeneratePlan(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	seedSpending(t, c, "alice", map[string]int64{"Food": 600, "Rent": 400})

	t.Run("saving", func(t *testing.T) {
		resp, err := c.insights.GeneratePlan(ctx, connect.NewRequest(&api.GeneratePlanRequest{UserID: "alice", PlanType: "saving"}))
		if err != nil {
			t.Fatalf("GeneratePlan failed: %v", err)
		}
		if resp.Msg.TotalAnalyzed != "$1000.00" {
			t.Errorf("total = %q, want $1000.00", resp.Msg.TotalAnalyzed)
		}
		if len(resp.Msg.Details) != 2 {
			t.Fatalf("expected 2 suggestions, got %+v", resp.Msg.Details)
		}
		if !resp.Msg.Details[0].Figure.Equal(decimal.NewFromInt(60)) || !resp.Msg.Details[1].Figure.Equal(decimal.NewFromInt(40)) {
			t.Errorf("unexpected figures: %+v, %+v", resp.Msg.Details[0], resp.Msg.Details[1])
		}
		if !strings.Contains(resp.Msg.Suggestions[0], "Food") {
			t.Errorf("first suggestion should mention Food: %q", resp.Msg.Suggestions[0])
		}
		if !strings.Contains(resp.Msg.WelcomeMessage, "Saving Plan") {
			t.Errorf("unexpected welcome %q", resp.Msg.WelcomeMessage)
		}
	})

	t.Run("unknown plan type", func(t *testing.T) {
		resp, err := c.insights.GeneratePlan(ctx, connect.NewRequest(&api.GeneratePlanRequest{UserID: "alice", PlanType: "retirement"}))
		if err != nil {
			t.Fatalf("GeneratePlan failed: %v", err)
		}
		if len(resp.Msg.Suggestions) != 0 || resp.Msg.Summary != "" {
			t.Errorf("expected no suggestions, got %+v", resp.Msg)
		}
	})

	t.Run("missing plan type", func(t *testing.T) {
		_, err := c.insights.GeneratePlan(ctx, connect.NewRequest(&api.GeneratePlanRequest{UserID: "alice"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}
