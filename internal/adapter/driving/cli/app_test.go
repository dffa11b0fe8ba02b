package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseArgs(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tests := []struct {
		name         string
		argv         []string
		wantBranchID *int64
	}{
		{
			name: "no branch flag",
			argv: []string{"--inventory", "a.json,b.csv", "--report-type", "pdf,xlsx"},
		},
		{
			name:         "explicit zero branch id",
			argv:         []string{"--branch-id", "0"},
			wantBranchID: new(int64),
		},
		{
			name:         "branch id and dates",
			argv:         []string{"--branch-id", "12", "--start", "2024-03-01", "--end", "2024-03-31", "-d", "out"},
			wantBranchID: func() *int64 { v := int64(12); return &v }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewCLIApp("test", logger)
			if err := app.rootCmd.ParseFlags(tt.argv); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			args, err := app.parseArgs(app.rootCmd)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			switch {
			case tt.wantBranchID == nil && args.BranchID != nil:
				t.Errorf("Expected no branch id, got %d", *args.BranchID)
			case tt.wantBranchID != nil && (args.BranchID == nil || *args.BranchID != *tt.wantBranchID):
				t.Errorf("Expected branch id %d, got %v", *tt.wantBranchID, args.BranchID)
			}
			if args.Dir != "" && !filepath.IsAbs(args.Dir) {
				t.Errorf("Expected absolute dir, got %s", args.Dir)
			}
			if args.Period != "month" {
				t.Errorf("Expected default period month, got %s", args.Period)
			}
		})
	}
}

func TestParseArgs_Slices(t *testing.T) {
	app := NewCLIApp("test", logrus.New())
	if err := app.rootCmd.ParseFlags([]string{"--inventory", "a.json,s3://b/k.csv", "-y", "pdf,xlsx", "--trend"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	args, err := app.parseArgs(app.rootCmd)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(args.Inventory) != 2 || args.Inventory[1] != "s3://b/k.csv" {
		t.Errorf("Unexpected inventory: %v", args.Inventory)
	}
	if len(args.ReportType) != 2 || args.ReportType[1] != "xlsx" {
		t.Errorf("Unexpected report types: %v", args.ReportType)
	}
	if !args.Trend {
		t.Error("Expected trend flag to be set")
	}
}
