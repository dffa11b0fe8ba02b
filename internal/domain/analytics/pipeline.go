package analytics

import (
	"time"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// Run narrows both collections with q and derives every dashboard structure from them.
// The search term only narrows the composition; valuation uses every product of the branch.
func Run(inventory []entity.InventoryRecord, txs []entity.TransactionRecord, q entity.Query, asOf time.Time) entity.DashboardReport {
	inv := FilterByRange(FilterByBranch(inventory, q.Branch), inventoryDate, q.Range)
	tr := FilterByRange(FilterByBranch(txs, q.Branch), transactionDate, q.Range)

	return entity.DashboardReport{
		GeneratedAt:      asOf,
		Query:            q,
		InventoryCount:   len(inv),
		TransactionCount: len(tr),
		Valuation:        AggregateValueByPeriod(inv, asOf),
		Composition:      AggregateComposition(FilterBySearch(inv, q.Search)),
		TransactionTypes: CountByType(tr),
		Balance:          Balance(tr),
	}
}
