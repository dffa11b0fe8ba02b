package entity

import "github.com/shopspring/decimal"

// TransactionTypeSummary counts the transactions of one type.
type TransactionTypeSummary struct {
	TypeName string `json:"type_name"`
	Count    int    `json:"count"`
}

// BalanceCategory is either Income or Expense.
type BalanceCategory string

const (
	Income  BalanceCategory = "Income"
	Expense BalanceCategory = "Expense"
)

// BalanceSummary holds the total of one side of the balance.
type BalanceSummary struct {
	Category BalanceCategory `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
