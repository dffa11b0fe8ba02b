package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

func newTestService(records *fakeRecords) *AnalyticsService {
	s := NewAnalyticsService(records, newMapCache(), quietLogger())
	s.SetClock(func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) })
	return s
}

func TestAnalyticsService_ReportBeforeRefresh(t *testing.T) {
	s := newTestService(&fakeRecords{})
	if _, err := s.Report(context.Background(), entity.Query{}); !errors.Is(err, types.ErrNoSnapshot) {
		t.Errorf("Expected ErrNoSnapshot, got %v", err)
	}
}

func TestAnalyticsService_Refresh(t *testing.T) {
	fetchErr := errors.New("connection refused")

	tests := []struct {
		name             string
		records          *fakeRecords
		wantOutcome      types.FetchOutcome
		wantErr          error
		wantInventory    int
		wantTransactions int
	}{
		{
			name:             "both sources load",
			records:          &fakeRecords{inventory: sampleInventory(), transactions: sampleTransactions()},
			wantOutcome:      types.FetchOK,
			wantInventory:    3,
			wantTransactions: 3,
		},
		{
			name:             "inventory fails",
			records:          &fakeRecords{invErr: fetchErr, transactions: sampleTransactions()},
			wantOutcome:      types.FetchInventoryFailed,
			wantInventory:    0,
			wantTransactions: 3,
		},
		{
			name:             "transactions fail",
			records:          &fakeRecords{inventory: sampleInventory(), txErr: fetchErr},
			wantOutcome:      types.FetchTransactionsFailed,
			wantInventory:    3,
			wantTransactions: 0,
		},
		{
			name:        "both fail",
			records:     &fakeRecords{invErr: fetchErr, txErr: fetchErr},
			wantOutcome: types.FetchBothFailed,
			wantErr:     types.ErrBothSourcesFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(tt.records)
			ctx := context.Background()

			outcome, err := s.Refresh(ctx, nil)
			if outcome != tt.wantOutcome {
				t.Errorf("Expected outcome %v, got %v", tt.wantOutcome, outcome)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				if s.Generation() != 0 {
					t.Errorf("Expected snapshot to stay unloaded, generation %d", s.Generation())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			report, err := s.Report(ctx, entity.Query{})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if report.InventoryCount != tt.wantInventory || report.TransactionCount != tt.wantTransactions {
				t.Errorf("Expected %d/%d records, got %d/%d", tt.wantInventory, tt.wantTransactions,
					report.InventoryCount, report.TransactionCount)
			}
			if report.Composition == nil || report.TransactionTypes == nil {
				t.Error("Expected non-nil empty collections")
			}
		})
	}
}

func TestAnalyticsService_BothFailedKeepsPreviousSnapshot(t *testing.T) {
	records := &fakeRecords{inventory: sampleInventory(), transactions: sampleTransactions()}
	s := newTestService(records)
	ctx := context.Background()

	if _, err := s.Refresh(ctx, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records.invErr = errors.New("timeout")
	records.txErr = errors.New("timeout")
	if _, err := s.Refresh(ctx, nil); !errors.Is(err, types.ErrBothSourcesFailed) {
		t.Fatalf("Expected ErrBothSourcesFailed, got %v", err)
	}

	report, err := s.Report(ctx, entity.Query{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.InventoryCount != 3 {
		t.Errorf("Expected previous snapshot with 3 inventory records, got %d", report.InventoryCount)
	}
	if s.Outcome() != types.FetchOK {
		t.Errorf("Expected outcome of the last successful refresh, got %v", s.Outcome())
	}
}

func TestAnalyticsService_ReportIsMemoized(t *testing.T) {
	s := newTestService(&fakeRecords{inventory: sampleInventory(), transactions: sampleTransactions()})
	ctx := context.Background()

	if _, err := s.Refresh(ctx, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	q := entity.Query{Branch: entity.BranchSelector{ID: int64Ptr(1)}}
	first, _ := s.Report(ctx, q)
	second, _ := s.Report(ctx, q)
	if first.RunID == "" || first.RunID != second.RunID {
		t.Errorf("Expected cached report, got run IDs %q and %q", first.RunID, second.RunID)
	}

	other, _ := s.Report(ctx, entity.Query{Branch: entity.BranchSelector{ID: int64Ptr(2)}})
	if other.RunID == first.RunID {
		t.Error("Expected a different query to compute a new report")
	}

	if _, err := s.Refresh(ctx, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	third, _ := s.Report(ctx, q)
	if third.RunID == first.RunID {
		t.Error("Expected refresh to invalidate cached reports")
	}
	if s.Generation() != 2 {
		t.Errorf("Expected generation 2, got %d", s.Generation())
	}
}

func TestAnalyticsService_ReportContents(t *testing.T) {
	s := newTestService(&fakeRecords{inventory: sampleInventory(), transactions: sampleTransactions()})
	ctx := context.Background()
	if _, err := s.Refresh(ctx, int64Ptr(1)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	report, err := s.Report(ctx, entity.Query{Branch: entity.BranchSelector{ID: int64Ptr(1), Name: "Norte"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.InventoryCount != 2 || report.TransactionCount != 2 {
		t.Errorf("Expected 2/2 records, got %d/%d", report.InventoryCount, report.TransactionCount)
	}
	if got := entity.Total(report.Valuation.Day).String(); got != "25" {
		t.Errorf("Expected day total 25, got %s", got)
	}
	if len(report.Valuation.Year) != 1 || report.Valuation.Year[0].Key != "2024" {
		t.Errorf("Expected a single 2024 year bucket, got %+v", report.Valuation.Year)
	}
	if got := report.NetBalance().String(); got != "60" {
		t.Errorf("Expected net balance 60, got %s", got)
	}
}
