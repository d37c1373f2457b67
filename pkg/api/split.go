package api

import "github.com/shopspring/decimal"

type CreateSplitRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Title     string          `json:"title"`
	Users     []string        `json:"users"`
	CreatorID string          `json:"creatorID"`
}

type CreateSplitResponse struct {
	Message   string         `json:"message"`
	Responses []*Transaction `json:"responses"`
}

type MarkPaidRequest struct {
	TransactionID string `json:"transactionID"`
	UserID        string `json:"userID"`
}

// PaidAttributes are the attributes changed by MarkPaid.
type PaidAttributes struct {
	IsPaid bool `json:"isPaid"`
}

type MarkPaidResponse struct {
	Message  string          `json:"message"`
	Response *PaidAttributes `json:"response"`
}

// GetSplitGroupRequest identifies a split group. Users optionally lists the
// participants the caller expects, so missing entries can be reported.
type GetSplitGroupRequest struct {
	CameFrom string   `json:"cameFrom"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Users    []string `json:"users,omitempty"`
}

// GroupMember is one entry of a split group.
type GroupMember struct {
	UserID        string          `json:"userID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	IsPaid        bool            `json:"isPaid"`
}

type GetSplitGroupResponse struct {
	Entries     []*GroupMember  `json:"entries"`
	Total       decimal.Decimal `json:"total"`
	Settled     decimal.Decimal `json:"settled"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Complete    bool            `json:"complete"`
	Missing     []string        `json:"missing,omitempty"`
}

type DeleteSplitGroupRequest struct {
	CameFrom string `json:"cameFrom"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

type DeleteSplitGroupResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}
