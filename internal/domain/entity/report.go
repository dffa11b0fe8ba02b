package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardReport contains every derived structure of one pipeline run.
type DashboardReport struct {
	RunID            string                   `json:"run_id,omitempty"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Query            Query                    `json:"query"`
	InventoryCount   int                      `json:"inventory_count"`
	TransactionCount int                      `json:"transaction_count"`
	Valuation        PeriodBuckets            `json:"valuation"`
	Composition      []CompositionEntry       `json:"composition"`
	TransactionTypes []TransactionTypeSummary `json:"transaction_types"`
	Balance          [2]BalanceSummary        `json:"balance"`
}

// NetBalance returns Income minus Expense.
func (r DashboardReport) NetBalance() decimal.Decimal {
	net := decimal.Zero
	for _, b := range r.Balance {
		switch b.Category {
		case Income:
			net = net.Add(b.Total)
		case Expense:
			net = net.Sub(b.Total)
		}
	}
	return net
}
