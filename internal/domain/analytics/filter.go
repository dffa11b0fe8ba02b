// Package analytics turns inventory and transaction records into dashboard aggregates.
// Every function here is pure: inputs are never mutated and nothing is read from the environment.
package analytics

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// lastInstant is 23:59:59.999 as an offset from midnight.
const lastInstant = 24*time.Hour - time.Millisecond

// startOfDay normaliza o instante para 00:00:00.000 UTC do mesmo dia de calendário.
func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay normaliza o instante para 23:59:59.999 UTC do mesmo dia de calendário.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(lastInstant)
}

// FilterByRange keeps the records whose date falls inside r, both ends inclusive.
// A zero date counts as missing: such records are dropped as soon as any bound is set.
func FilterByRange[T any](records []T, dateOf func(T) time.Time, r entity.DateRange) []T {
	out := make([]T, 0, len(records))
	if r.IsZero() {
		return append(out, records...)
	}

	var from, to time.Time
	if r.Start != nil {
		from = startOfDay(*r.Start)
	}
	if r.End != nil {
		to = endOfDay(*r.End)
	}

	for _, rec := range records {
		at := dateOf(rec)
		if at.IsZero() {
			continue
		}
		if r.Start != nil && at.Before(from) {
			continue
		}
		if r.End != nil && at.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FilterByBranch keeps the records belonging to the selected branch. No partial matching.
func FilterByBranch[T entity.BranchScoped](records []T, sel entity.BranchSelector) []T {
	out := make([]T, 0, len(records))
	if sel.IsZero() {
		return append(out, records...)
	}
	for _, rec := range records {
		if rec.MatchesBranch(sel) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBySearch keeps the inventory records whose product name contains term, ignoring case.
func FilterBySearch(records []entity.InventoryRecord, term string) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0, len(records))
	term = strings.TrimSpace(term)
	if term == "" {
		return append(out, records...)
	}

	fold := cases.Fold()
	needle := fold.String(term)
	for _, rec := range records {
		if strings.Contains(fold.String(rec.ProductName), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Dates de referência usadas por cada tipo de registro.
func inventoryDate(r entity.InventoryRecord) time.Time     { return r.RecordedAt }
func transactionDate(t entity.TransactionRecord) time.Time { return t.OccurredAt }
