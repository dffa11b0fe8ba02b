package entity

import "github.com/shopspring/decimal"

// PeriodKind names an aggregation window.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// TimeBucket is the summed inventory value for one period key.
type TimeBucket struct {
	Period     PeriodKind      `json:"period"`
	Key        string          `json:"key"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// PeriodBuckets groups the buckets of every period kind, each sorted by key.
type PeriodBuckets struct {
	Day   []TimeBucket `json:"day"`
	Week  []TimeBucket `json:"week"`
	Month []TimeBucket `json:"month"`
	Year  []TimeBucket `json:"year"`
}

// ByKind returns the buckets of a given kind.
func (p PeriodBuckets) ByKind(kind PeriodKind) []TimeBucket {
	switch kind {
	case PeriodDay:
		return p.Day
	case PeriodWeek:
		return p.Week
	case PeriodMonth:
		return p.Month
	case PeriodYear:
		return p.Year
	default:
		return nil
	}
}

// Total sums the values of a bucket slice.
func Total(buckets []TimeBucket) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.TotalValue)
	}
	return sum
}
