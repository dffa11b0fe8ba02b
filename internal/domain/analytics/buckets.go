package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// AggregateValueByPeriod sums quantity × unit price per day, week, month and year.
//
// Week and month totals are folded from the day totals, never from the raw records, so they
// always partition the same amount. The year bucket is keyed by asOf's year and holds the sum of
// every day regardless of the calendar year the data falls in.
func AggregateValueByPeriod(records []entity.InventoryRecord, asOf time.Time) entity.PeriodBuckets {
	days := make(map[string]decimal.Decimal)
	for _, rec := range records {
		if rec.RecordedAt.IsZero() {
			continue
		}
		value, ok := rec.Value()
		if !ok {
			continue
		}
		key := rec.RecordedAt.UTC().Format(dayLayout)
		days[key] = days[key].Add(value)
	}

	weeks := make(map[string]decimal.Decimal)
	months := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for key, value := range days {
		day, err := time.Parse(dayLayout, key)
		if err != nil {
			continue
		}
		wk := weekKey(day)
		weeks[wk] = weeks[wk].Add(value)
		mk := day.Format("2006-01")
		months[mk] = months[mk].Add(value)
		total = total.Add(value)
	}

	result := entity.PeriodBuckets{
		Day:   toBuckets(entity.PeriodDay, days),
		Week:  toBuckets(entity.PeriodWeek, weeks),
		Month: toBuckets(entity.PeriodMonth, months),
		Year:  []entity.TimeBucket{},
	}
	if len(days) > 0 {
		result.Year = append(result.Year, entity.TimeBucket{
			Period:     entity.PeriodYear,
			Key:        strconv.Itoa(asOf.UTC().Year()),
			TotalValue: total,
		})
	}
	return result
}

// weekKey formata a semana ISO-8601 como "2024-S09".
func weekKey(day time.Time) string {
	year, week := day.ISOWeek()
	return fmt.Sprintf("%d-S%02d", year, week)
}

func toBuckets(kind entity.PeriodKind, totals map[string]decimal.Decimal) []entity.TimeBucket {
	buckets := make([]entity.TimeBucket, 0, len(totals))
	for key, value := range totals {
		buckets = append(buckets, entity.TimeBucket{Period: kind, Key: key, TotalValue: value})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}
