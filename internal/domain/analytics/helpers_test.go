package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

func qty(n int64) *int64 { return &n }

func price(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", s, err)
	}
	return at
}

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return &d
}

func inv(name string, q int64, p string, branch int64, at time.Time) entity.InventoryRecord {
	return entity.InventoryRecord{
		ProductName: name,
		Quantity:    qty(q),
		UnitPrice:   price(p),
		BranchID:    branch,
		RecordedAt:  at,
	}
}

func tx(kind, total, branch string, at time.Time) entity.TransactionRecord {
	return entity.TransactionRecord{
		TransactionType: kind,
		TotalPrice:      price(total),
		BranchName:      branch,
		OccurredAt:      at,
	}
}
