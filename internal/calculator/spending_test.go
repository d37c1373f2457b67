package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

func tx(category, amount string) *models.Transaction {
	return &models.Transaction{Category: category, Amount: decimal.RequireFromString(amount)}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]*models.Transaction{
		tx("Food", "0.10"),
		tx("Food", "0.20"),
		tx("Rent", "400"),
		tx("food", "1"),
	})

	if !s.ByCategory["Food"].Equal(decimal.RequireFromString("0.30")) {
		t.Errorf("Food = %s, want exactly 0.30", s.ByCategory["Food"])
	}
	// categories are case-sensitive
	if !s.ByCategory["food"].Equal(decimal.NewFromInt(1)) {
		t.Errorf("food = %s, want 1", s.ByCategory["food"])
	}
	if !s.Total.Equal(decimal.RequireFromString("401.30")) {
		t.Errorf("Total = %s, want 401.30", s.Total)
	}
}

func TestPercentages(t *testing.T) {
	t.Run("formats two decimals", func(t *testing.T) {
		got := Percentages(Summarize([]*models.Transaction{tx("Food", "600"), tx("Rent", "400")}))
		if got["Food"] != "60.00%" {
			t.Errorf("Food = %s, want 60.00%%", got["Food"])
		}
		if got["Rent"] != "40.00%" {
			t.Errorf("Rent = %s, want 40.00%%", got["Rent"])
		}
	})

	t.Run("sums to about one hundred", func(t *testing.T) {
		got := Percentages(Summarize([]*models.Transaction{
			tx("A", "1"), tx("B", "1"), tx("C", "1"), tx("D", "2.5"), tx("E", "7.13"),
		}))
		sum := decimal.Zero
		for category, p := range got {
			d, err := decimal.NewFromString(p[:len(p)-1])
			if err != nil {
				t.Fatalf("%s: unparsable percentage %q", category, p)
			}
			sum = sum.Add(d)
		}
		diff := sum.Sub(decimal.NewFromInt(100)).Abs()
		if diff.GreaterThan(decimal.RequireFromString("0.05")) {
			t.Errorf("percentages sum to %s", sum)
		}
	})

	t.Run("empty summary", func(t *testing.T) {
		got := Percentages(NewSummary())
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		got := Percentages(Summarize([]*models.Transaction{tx("Food", "0")}))
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})
}
