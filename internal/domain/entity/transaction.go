package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord represents one recorded sale, purchase or return event.
type TransactionRecord struct {
	ID              int64               `json:"id"`
	TransactionType string              `json:"transaction_type"`
	Quantity        *int64              `json:"quantity"`
	UnitPrice       decimal.NullDecimal `json:"unit_price"`
	TotalPrice      decimal.NullDecimal `json:"total_price"`
	BranchName      string              `json:"branch_name"`
	EmployeeName    string              `json:"employee_name"`
	Description     string              `json:"description"`
	OccurredAt      time.Time           `json:"occurred_at"`
}

// MatchesBranch compares the branch name exactly. Transactions only carry the name.
func (t TransactionRecord) MatchesBranch(sel BranchSelector) bool {
	if sel.Name == "" {
		return true
	}
	return t.BranchName == sel.Name
}
