package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

func entry(id, user, amount string, paid bool) *models.Transaction {
	return &models.Transaction{
		ID:       id,
		UserID:   user,
		Amount:   decimal.RequireFromString(amount),
		IsPaid:   models.BoolPtr(paid),
		CameFrom: "alice",
	}
}

func TestCalculateGroupStatus(t *testing.T) {
	t.Run("complete group with one settled participant", func(t *testing.T) {
		status := CalculateGroupStatus("alice", []*models.Transaction{
			entry("t3", "carol", "33.33", false),
			entry("t1", "alice", "33.34", true),
			entry("t2", "bob", "33.33", true),
		}, []string{"bob", "carol"})

		if !status.Complete || !status.HasCreator || len(status.Missing) != 0 {
			t.Errorf("expected complete group, got %+v", status)
		}
		if !status.Total.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Total = %s, want 100", status.Total)
		}
		if !status.Settled.Equal(decimal.RequireFromString("66.67")) {
			t.Errorf("Settled = %s, want 66.67", status.Settled)
		}
		if !status.Outstanding.Equal(decimal.RequireFromString("33.33")) {
			t.Errorf("Outstanding = %s, want 33.33", status.Outstanding)
		}
		if status.Members[0].UserID != "alice" || status.Members[1].UserID != "bob" || status.Members[2].UserID != "carol" {
			t.Errorf("unexpected member order: %+v", status.Members)
		}
	})

	t.Run("partial group reports missing participants", func(t *testing.T) {
		status := CalculateGroupStatus("alice", []*models.Transaction{
			entry("t1", "alice", "33.34", true),
		}, []string{"bob", "carol"})

		if status.Complete {
			t.Error("expected incomplete group")
		}
		if len(status.Missing) != 2 {
			t.Errorf("Missing = %v, want [bob carol]", status.Missing)
		}
	})

	t.Run("missing creator is incomplete", func(t *testing.T) {
		status := CalculateGroupStatus("alice", []*models.Transaction{
			entry("t2", "bob", "50", false),
		}, nil)

		if status.HasCreator || status.Complete {
			t.Errorf("expected missing creator, got %+v", status)
		}
	})
}
