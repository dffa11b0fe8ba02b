package repository

import (
	"context"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// RecordRepository supplies the raw collections the analytics pipeline runs on.
// The two fetches fail independently.
type RecordRepository interface {
	FetchInventory(ctx context.Context, branchID *int64) ([]entity.InventoryRecord, error)
	FetchTransactions(ctx context.Context) ([]entity.TransactionRecord, error)
}
