package api

import "github.com/shopspring/decimal"

// SpendingSummaryRequest asks for a user's spending by category.
// From and To optionally bound the entry dates, inclusive.
type SpendingSummaryRequest struct {
	UserID string `json:"userID"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

// SpendingSummary maps each category to its share of total spend ("NN.NN%").
type SpendingSummary map[string]string

type GeneratePlanRequest struct {
	UserID   string `json:"userID"`
	PlanType string `json:"planType"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

// Suggestion is the structured form of one plan recommendation.
type Suggestion struct {
	Category   string          `json:"category,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Action     string          `json:"action"`
	Figure     decimal.Decimal `json:"figure"`
	Text       string          `json:"text"`
}

// GeneratePlanResponse keeps the human-readable keys clients already render.
type GeneratePlanResponse struct {
	WelcomeMessage string        `json:"Welcome Message"`
	Summary        string        `json:"Summary"`
	Suggestions    []string      `json:"Suggestions"`
	TotalAnalyzed  string        `json:"Total Spending Analyzed"`
	PlanType       string        `json:"planType"`
	Details        []*Suggestion `json:"details"`
}
