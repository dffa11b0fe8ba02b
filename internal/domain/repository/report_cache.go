package repository

import (
	"context"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// ReportCache memoizes pipeline results. Keys already encode the dataset generation,
// so entries never need explicit invalidation.
type ReportCache interface {
	Get(ctx context.Context, key string) (entity.DashboardReport, bool)
	Set(ctx context.Context, key string, report entity.DashboardReport)
}
