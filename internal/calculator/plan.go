package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PlanType selects the rule set GeneratePlan applies.
type PlanType string

const (
	PlanSaving        PlanType = "saving"
	PlanDebtReduction PlanType = "debt_reduction"
	PlanBudgeting     PlanType = "budgeting"
	PlanInvestment    PlanType = "investment"
)

// Valid reports whether p is one of the known plan types.
func (p PlanType) Valid() bool {
	switch p {
	case PlanSaving, PlanDebtReduction, PlanBudgeting, PlanInvestment:
		return true
	}
	return false
}

// Action is what a suggestion recommends.
type Action string

const (
	ActionReduce         Action = "reduce"
	ActionMaintain       Action = "maintain"
	ActionInvest         Action = "invest"
	ActionPrioritizeDebt Action = "prioritize_debt"
)

const welcomeMessage = "🌟 Welcome to Your Personal Finance Assistant! Let's optimize your finances."

var (
	savingThreshold = decimal.NewFromInt(5)
	tenPercent      = decimal.RequireFromString("0.10")
	fivePercent     = decimal.RequireFromString("0.05")

	debtReductionCategories = []string{"Entertainment", "Shopping", "Luxury Items"}
	essentialCategories     = []string{"Housing", "Groceries", "Healthcare"}
	nonEssentialCategories  = []string{"Entertainment", "Dining Out", "Shopping"}
	nonInvestableCategories = map[string]bool{
		"Housing":        true,
		"Groceries":      true,
		"Healthcare":     true,
		"Savings":        true,
		"Debt Repayment": true,
	}
)

// Suggestion is one structured recommendation.
type Suggestion struct {
	Category   string
	Amount     decimal.Decimal // current spend in the category
	Percentage decimal.Decimal // share of total spend
	Action     Action
	Figure     decimal.Decimal // computed saving or investment; zero when not applicable
	Text       string          // rendered prose for presentation
}

// Plan is a named set of recommendations.
type Plan struct {
	PlanType       PlanType
	WelcomeMessage string
	Summary        string
	Suggestions    []Suggestion
}

// GeneratePlan applies the rules for planType to the per-category spend.
// An unknown plan type returns the generic welcome message and no suggestions.
func GeneratePlan(planType PlanType, byCategory map[string]decimal.Decimal, total decimal.Decimal) *Plan {
	plan := &Plan{
		PlanType:       planType,
		WelcomeMessage: welcomeMessage,
		Suggestions:    []Suggestion{},
	}

	pct := func(amount decimal.Decimal) decimal.Decimal {
		return Percentage(amount, total)
	}

	switch planType {
	case PlanSaving:
		plan.Summary = "Here's your personalized saving plan aimed at boosting your savings:"
		for _, category := range sortedCategories(byCategory) {
			amount := byCategory[category]
			p := pct(amount)
			if !p.GreaterThan(savingThreshold) {
				continue
			}
			saving := amount.Mul(tenPercent)
			plan.Suggestions = append(plan.Suggestions, Suggestion{
				Category:   category,
				Amount:     amount,
				Percentage: p,
				Action:     ActionReduce,
				Figure:     saving,
				Text: fmt.Sprintf("Reduce by 10%% in %s (currently %s, %s%% of total). Potential saving: %s per month.",
					category, FormatDollars(amount), p.StringFixed(2), FormatDollars(saving)),
			})
		}
		plan.WelcomeMessage += "\n\n💡 Saving Plan: Your guide to smart savings and financial growth."

	case PlanDebtReduction:
		plan.Summary = "Debt reduction strategy to help you minimize debts more efficiently:"
		for _, category := range debtReductionCategories {
			amount, ok := byCategory[category]
			if !ok || !amount.IsPositive() {
				continue
			}
			p := pct(amount)
			plan.Suggestions = append(plan.Suggestions, Suggestion{
				Category:   category,
				Amount:     amount,
				Percentage: p,
				Action:     ActionReduce,
				Text: fmt.Sprintf("Consider reducing %s expenses (%s, %s%% of total) for faster debt repayment.",
					category, FormatDollars(amount), p.StringFixed(2)),
			})
		}
		plan.Suggestions = append(plan.Suggestions, Suggestion{
			Action: ActionPrioritizeDebt,
			Text:   "Prioritize repaying debts first.",
		})
		plan.WelcomeMessage += "\n\n🚀 Debt Reduction Plan: A strategic approach to minimize and eliminate debt."

	case PlanBudgeting:
		plan.Summary = "Customized budgeting plan to maintain a balanced financial life:"
		for _, category := range essentialCategories {
			amount, ok := byCategory[category]
			if !ok {
				continue
			}
			p := pct(amount)
			plan.Suggestions = append(plan.Suggestions, Suggestion{
				Category:   category,
				Amount:     amount,
				Percentage: p,
				Action:     ActionMaintain,
				Text: fmt.Sprintf("Maintain essential spending in %s (%s, %s%% of total).",
					category, FormatDollars(amount), p.StringFixed(2)),
			})
		}
		for _, category := range nonEssentialCategories {
			amount, ok := byCategory[category]
			if !ok {
				continue
			}
			saving := amount.Mul(tenPercent)
			plan.Suggestions = append(plan.Suggestions, Suggestion{
				Category:   category,
				Amount:     amount,
				Percentage: pct(amount),
				Action:     ActionReduce,
				Figure:     saving,
				Text: fmt.Sprintf("Consider reducing non-essential %s spending by 10%% (%s potential saving).",
					category, FormatDollars(saving)),
			})
		}
		plan.WelcomeMessage += "\n\n📊 Budgeting Plan: Crafting a balanced and sustainable financial lifestyle."

	case PlanInvestment:
		plan.Summary = "Investment guidance to help grow your wealth:"
		for _, category := range sortedCategories(byCategory) {
			if nonInvestableCategories[category] {
				continue
			}
			amount := byCategory[category]
			investment := amount.Mul(fivePercent)
			plan.Suggestions = append(plan.Suggestions, Suggestion{
				Category:   category,
				Amount:     amount,
				Percentage: pct(amount),
				Action:     ActionInvest,
				Figure:     investment,
				Text: fmt.Sprintf("Consider investing 5%% of %s spending (%s potential investment) for long-term growth.",
					category, FormatDollars(investment)),
			})
		}
		plan.WelcomeMessage += "\n\n📈 Investment Plan: Unlocking the potential of your finances for future prosperity."
	}

	return plan
}

// FormatDollars formats an amount as "$N.NN".
func FormatDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func sortedCategories(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
