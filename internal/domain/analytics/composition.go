package analytics

import (
	"sort"
	"strings"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// AggregateComposition breaks the total quantity down by product, largest share first.
// Ties keep the order in which products were first seen. Returns an empty slice when the
// total quantity is zero.
func AggregateComposition(records []entity.InventoryRecord) []entity.CompositionEntry {
	order := []string{}
	quantities := make(map[string]int64)
	var grandTotal int64

	for _, rec := range records {
		if strings.TrimSpace(rec.ProductName) == "" || rec.Quantity == nil || *rec.Quantity < 0 {
			continue
		}
		if _, seen := quantities[rec.ProductName]; !seen {
			order = append(order, rec.ProductName)
		}
		quantities[rec.ProductName] += *rec.Quantity
		grandTotal += *rec.Quantity
	}

	entries := []entity.CompositionEntry{}
	if grandTotal == 0 {
		return entries
	}

	for _, name := range order {
		qty := quantities[name]
		entries = append(entries, entity.CompositionEntry{
			ProductName: name,
			Quantity:    qty,
			Percentage:  float64(qty) / float64(grandTotal) * 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentage > entries[j].Percentage
	})
	return entries
}
