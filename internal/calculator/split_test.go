package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/qattah/internal/models"
)

func TestCalculateShares(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		creator      string
		participants []string
		wantErr      error
		validateFunc func(t *testing.T, shares []Share)
	}{
		{
			name:         "100 split three ways puts the extra cent on the creator",
			total:        "100",
			creator:      "alice",
			participants: []string{"bob", "carol"},
			validateFunc: func(t *testing.T, shares []Share) {
				want := []struct {
					user   string
					amount string
				}{{"alice", "33.34"}, {"bob", "33.33"}, {"carol", "33.33"}}
				for i, w := range want {
					if shares[i].UserID != w.user {
						t.Errorf("share %d user = %s, want %s", i, shares[i].UserID, w.user)
					}
					if !shares[i].Amount.Equal(decimal.RequireFromString(w.amount)) {
						t.Errorf("share %d amount = %s, want %s", i, shares[i].Amount, w.amount)
					}
				}
				if !shares[0].Creator || shares[1].Creator || shares[2].Creator {
					t.Error("only the first share should be the creator's")
				}
			},
		},
		{
			name:         "rounding up is taken back from the creator",
			total:        "200",
			creator:      "alice",
			participants: []string{"bob", "carol"},
			validateFunc: func(t *testing.T, shares []Share) {
				// 200 / 3 = 66.666.. rounds half-up to 66.67
				if !shares[1].Amount.Equal(decimal.RequireFromString("66.67")) {
					t.Errorf("participant share = %s, want 66.67", shares[1].Amount)
				}
				if !shares[0].Amount.Equal(decimal.RequireFromString("66.66")) {
					t.Errorf("creator share = %s, want 66.66", shares[0].Amount)
				}
			},
		},
		{
			name:         "even split has no remainder",
			total:        "90.00",
			creator:      "alice",
			participants: []string{"bob"},
			validateFunc: func(t *testing.T, shares []Share) {
				for _, s := range shares {
					if !s.Amount.Equal(decimal.NewFromInt(45)) {
						t.Errorf("%s share = %s, want 45", s.UserID, s.Amount)
					}
				}
			},
		},
		{
			name:         "zero amount",
			total:        "0",
			creator:      "alice",
			participants: []string{"bob"},
			wantErr:      models.ErrInvalidAmount,
		},
		{
			name:         "negative amount",
			total:        "-5",
			creator:      "alice",
			participants: []string{"bob"},
			wantErr:      models.ErrInvalidAmount,
		},
		{
			name:    "no participants",
			total:   "10",
			creator: "alice",
			wantErr: models.ErrMissingField,
		},
		{
			name:         "empty participant id",
			total:        "10",
			creator:      "alice",
			participants: []string{"bob", ""},
			wantErr:      models.ErrMissingField,
		},
		{
			name:         "creator listed as participant",
			total:        "10",
			creator:      "alice",
			participants: []string{"bob", "alice"},
			wantErr:      models.ErrDuplicateParticipant,
		},
		{
			name:         "duplicate participant",
			total:        "10",
			creator:      "alice",
			participants: []string{"bob", "bob"},
			wantErr:      models.ErrDuplicateParticipant,
		},
		{
			name:         "too few cents to split",
			total:        "0.03",
			creator:      "alice",
			participants: []string{"b", "c", "d", "e"},
			wantErr:      models.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := CalculateShares(decimal.RequireFromString(tt.total), tt.creator, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CalculateShares() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateShares() unexpected error = %v", err)
			}
			if len(shares) != len(tt.participants)+1 {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.participants)+1)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

func TestCalculateShares_SumsExactly(t *testing.T) {
	totals := []string{"0.05", "1", "10.01", "33.33", "99.99", "100", "123.45", "1000000.07"}
	for _, total := range totals {
		for size := 1; size <= 9; size++ {
			participants := make([]string, size)
			for i := range participants {
				participants[i] = string(rune('b' + i))
			}

			want := decimal.RequireFromString(total)
			shares, err := CalculateShares(want, "a", participants)
			if errors.Is(err, models.ErrInvalidAmount) {
				// tiny totals over many people are rejected, never mis-summed
				continue
			}
			if err != nil {
				t.Fatalf("total %s size %d: unexpected error %v", total, size, err)
			}

			sum := decimal.Zero
			for _, s := range shares {
				if s.Amount.IsNegative() {
					t.Errorf("total %s size %d: negative share %s", total, size, s.Amount)
				}
				sum = sum.Add(s.Amount)
			}
			if !sum.Equal(want) {
				t.Errorf("total %s size %d: shares sum to %s", total, size, sum)
			}
		}
	}
}
