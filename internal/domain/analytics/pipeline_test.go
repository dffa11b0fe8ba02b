package analytics

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

func TestRun(t *testing.T) {
	branch := int64(1)
	inventory := []entity.InventoryRecord{
		inv("Cafe", 2, "10", 1, ts(t, "2024-03-01T08:00:00Z")),
		inv("Azucar", 6, "1", 1, ts(t, "2024-03-02T08:00:00Z")),
		inv("Cafe", 100, "10", 2, ts(t, "2024-03-01T08:00:00Z")),
		inv("Cafe", 1, "10", 1, ts(t, "2024-04-01T08:00:00Z")),
	}
	txs := []entity.TransactionRecord{
		tx("venta", "100", "Centro", ts(t, "2024-03-01T10:00:00Z")),
		tx("compra", "30", "Centro", ts(t, "2024-03-02T10:00:00Z")),
		tx("venta", "999", "Norte", ts(t, "2024-03-01T10:00:00Z")),
		tx("venta", "5", "Centro", ts(t, "2024-05-01T10:00:00Z")),
	}
	q := entity.Query{
		Branch: entity.BranchSelector{ID: &branch, Name: "Centro"},
		Range:  entity.DateRange{Start: day(t, "2024-03-01"), End: day(t, "2024-03-31")},
		Search: "caf",
	}

	got := Run(inventory, txs, q, asOf)

	if got.InventoryCount != 2 || got.TransactionCount != 2 {
		t.Fatalf("Expected 2 inventory and 2 transactions, got %d and %d", got.InventoryCount, got.TransactionCount)
	}
	if !entity.Total(got.Valuation.Day).Equal(decimal.NewFromInt(26)) {
		t.Errorf("Expected valuation 26 (search must not narrow it), got %s", entity.Total(got.Valuation.Day))
	}
	if len(got.Composition) != 1 || got.Composition[0].ProductName != "Cafe" || got.Composition[0].Percentage != 100 {
		t.Errorf("Expected composition narrowed to Cafe, got %+v", got.Composition)
	}
	if len(got.TransactionTypes) != 2 {
		t.Errorf("Expected 2 transaction types, got %+v", got.TransactionTypes)
	}
	if !got.NetBalance().Equal(decimal.NewFromInt(70)) {
		t.Errorf("Expected net balance 70, got %s", got.NetBalance())
	}

	again := Run(inventory, txs, q, asOf)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Expected identical reports for identical inputs")
	}
}

func TestRun_EmptyCollections(t *testing.T) {
	got := Run(nil, nil, entity.Query{}, asOf)
	if len(got.Valuation.Day) != 0 || len(got.Valuation.Year) != 0 || len(got.Composition) != 0 || len(got.TransactionTypes) != 0 {
		t.Errorf("Expected empty structures, got %+v", got)
	}
	if got.Balance[0].Category != entity.Income || got.Balance[1].Category != entity.Expense {
		t.Errorf("Expected both balance entries, got %+v", got.Balance)
	}
}
