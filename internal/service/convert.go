package service

import (
	"github.com/mmynk/qattah/internal/calculator"
	"github.com/mmynk/qattah/internal/models"
	"github.com/mmynk/qattah/pkg/api"
)

func toAPITransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Category: tx.Category,
		Date:     tx.Date,
		Title:    tx.Title,
		UserID:   tx.UserID,
		IsPaid:   tx.IsPaid,
		CameFrom: tx.CameFrom,
	}
}

func toAPITransactions(txs []*models.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = toAPITransaction(tx)
	}
	return out
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

func toAPIGroup(status *calculator.GroupStatus) *api.GetSplitGroupResponse {
	resp := &api.GetSplitGroupResponse{
		Entries:     make([]*api.GroupMember, len(status.Members)),
		Total:       status.Total,
		Settled:     status.Settled,
		Outstanding: status.Outstanding,
		Complete:    status.Complete,
		Missing:     status.Missing,
	}
	for i, m := range status.Members {
		resp.Entries[i] = &api.GroupMember{
			UserID:        m.UserID,
			TransactionID: m.TransactionID,
			Amount:        m.Amount,
			IsPaid:        m.Paid,
		}
	}
	return resp
}

func toAPIPlan(plan *calculator.Plan, total string) *api.GeneratePlanResponse {
	resp := &api.GeneratePlanResponse{
		WelcomeMessage: plan.WelcomeMessage,
		Summary:        plan.Summary,
		Suggestions:    make([]string, len(plan.Suggestions)),
		TotalAnalyzed:  total,
		PlanType:       string(plan.PlanType),
		Details:        make([]*api.Suggestion, len(plan.Suggestions)),
	}
	for i, s := range plan.Suggestions {
		resp.Suggestions[i] = s.Text
		resp.Details[i] = &api.Suggestion{
			Category:   s.Category,
			Amount:     s.Amount,
			Percentage: s.Percentage.Round(2),
			Action:     string(s.Action),
			Figure:     s.Figure,
			Text:       s.Text,
		}
	}
	return resp
}
