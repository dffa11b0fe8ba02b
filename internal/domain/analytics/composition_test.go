package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

func TestAggregateComposition(t *testing.T) {
	records := []entity.InventoryRecord{
		inv("A", 30, "1", 1, time.Time{}),
		inv("B", 70, "1", 1, time.Time{}),
	}

	got := AggregateComposition(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	if got[0].ProductName != "B" || got[0].Quantity != 70 || math.Abs(got[0].Percentage-70) > 1e-9 {
		t.Errorf("Unexpected first entry: %+v", got[0])
	}
	if got[1].ProductName != "A" || got[1].Quantity != 30 || math.Abs(got[1].Percentage-30) > 1e-9 {
		t.Errorf("Unexpected second entry: %+v", got[1])
	}
}

func TestAggregateComposition_TiesKeepFirstSeenOrder(t *testing.T) {
	records := []entity.InventoryRecord{
		inv("C", 10, "1", 1, time.Time{}),
		inv("A", 10, "1", 1, time.Time{}),
		inv("B", 20, "1", 1, time.Time{}),
		inv("C", 0, "1", 1, time.Time{}),
	}

	got := AggregateComposition(records)
	want := []string{"B", "C", "A"}
	for i, name := range want {
		if got[i].ProductName != name {
			t.Errorf("Expected entry %d to be %s, got %s", i, name, got[i].ProductName)
		}
	}
}

func TestAggregateComposition_PercentagesSumTo100(t *testing.T) {
	records := []entity.InventoryRecord{
		inv("A", 1, "1", 1, time.Time{}),
		inv("B", 1, "1", 1, time.Time{}),
		inv("C", 1, "1", 1, time.Time{}),
		inv("D", 7, "1", 1, time.Time{}),
		inv("A", 13, "1", 1, time.Time{}),
	}

	var sum float64
	var total int64
	for _, e := range AggregateComposition(records) {
		sum += e.Percentage
		total += e.Quantity
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("Expected percentages to sum to 100, got %f", sum)
	}
	if total != 23 {
		t.Errorf("Expected quantities to sum to 23, got %d", total)
	}
}

func TestAggregateComposition_Exclusions(t *testing.T) {
	records := []entity.InventoryRecord{
		inv("A", 5, "abc", 1, time.Time{}), // unparsable price still counts
		{ProductName: "B", UnitPrice: price("1")},
		inv("", 50, "1", 1, time.Time{}),
		inv("C", 15, "2", 1, time.Time{}),
	}

	got := AggregateComposition(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %+v", got)
	}
	if got[0].ProductName != "C" || math.Abs(got[0].Percentage-75) > 1e-9 {
		t.Errorf("Unexpected first entry: %+v", got[0])
	}
	if got[1].ProductName != "A" || math.Abs(got[1].Percentage-25) > 1e-9 {
		t.Errorf("Unexpected second entry: %+v", got[1])
	}
}

func TestAggregateComposition_ZeroTotal(t *testing.T) {
	testCases := []struct {
		name    string
		records []entity.InventoryRecord
	}{
		{"nil input", nil},
		{"zero quantities", []entity.InventoryRecord{inv("A", 0, "1", 1, time.Time{}), inv("B", 0, "1", 1, time.Time{})}},
		{"no quantities", []entity.InventoryRecord{{ProductName: "A"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AggregateComposition(tc.records)
			if got == nil || len(got) != 0 {
				t.Errorf("Expected empty composition, got %#v", got)
			}
		})
	}
}

func TestAggregateComposition_NegativeQuantitiesAreExcluded(t *testing.T) {
	at := ts(t, "2024-03-01T10:00:00Z")
	got := AggregateComposition([]entity.InventoryRecord{
		inv("A", -5, "20", 1, at),
		inv("B", 10, "20", 1, at),
	})

	if len(got) != 1 || got[0].ProductName != "B" || got[0].Quantity != 10 {
		t.Fatalf("Expected only B in the composition, got %+v", got)
	}
	if got[0].Percentage != 100 {
		t.Errorf("Expected B to hold 100%%, got %v", got[0].Percentage)
	}
	for _, e := range got {
		if e.Percentage < 0 || e.Percentage > 100 {
			t.Errorf("Percentage out of range for %s: %v", e.ProductName, e.Percentage)
		}
	}
}
