package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func int64Ptr(v int64) *int64 { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeRecords struct {
	inventory    []entity.InventoryRecord
	transactions []entity.TransactionRecord
	invErr       error
	txErr        error

	mu        sync.Mutex
	branchIDs []*int64
}

func (f *fakeRecords) FetchInventory(_ context.Context, branchID *int64) ([]entity.InventoryRecord, error) {
	f.mu.Lock()
	f.branchIDs = append(f.branchIDs, branchID)
	f.mu.Unlock()
	return f.inventory, f.invErr
}

func (f *fakeRecords) FetchTransactions(context.Context) ([]entity.TransactionRecord, error) {
	return f.transactions, f.txErr
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string]entity.DashboardReport
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]entity.DashboardReport{}}
}

func (c *mapCache) Get(_ context.Context, key string) (entity.DashboardReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *mapCache) Set(_ context.Context, key string, report entity.DashboardReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = report
}

type fakeConfigRepo struct {
	config *types.Config
	err    error
}

func (f *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg := *f.config
	return &cfg, nil
}

type fakeExport struct {
	calls []string
	fail  map[string]bool
}

func (f *fakeExport) export(kind, filename, dir string) (string, error) {
	f.calls = append(f.calls, kind)
	if f.fail[kind] {
		return "", fmt.Errorf("disk full")
	}
	return fmt.Sprintf("%s/%s.%s", dir, filename, kind), nil
}

func (f *fakeExport) ExportToCSV(_ entity.DashboardReport, filename, dir string) (string, error) {
	return f.export("csv", filename, dir)
}

func (f *fakeExport) ExportToJSON(_ entity.DashboardReport, filename, dir string) (string, error) {
	return f.export("json", filename, dir)
}

func (f *fakeExport) ExportToPDF(_ entity.DashboardReport, filename, dir string) (string, error) {
	return f.export("pdf", filename, dir)
}

func (f *fakeExport) ExportToXLSX(_ entity.DashboardReport, filename, dir string) (string, error) {
	return f.export("xlsx", filename, dir)
}

type fakeConsole struct {
	warnings  []string
	errors    []string
	successes []string
	output    []string
	trend     []types.TrendPoint
}

func (c *fakeConsole) Print(a ...interface{}) {
	c.output = append(c.output, fmt.Sprint(a...))
}

func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.output = append(c.output, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Println(a ...interface{}) {
	c.output = append(c.output, fmt.Sprintln(a...))
}

func (c *fakeConsole) LogInfo(string, ...interface{}) {}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle {
	return fakeStatus{}
}

func (c *fakeConsole) CreateTable() types.TableInterface {
	return &fakeTable{}
}

func (c *fakeConsole) DisplayTrendBars(_ string, points []types.TrendPoint) {
	c.trend = points
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}

func (fakeStatus) Stop() {}

type fakeTable struct {
	rows int
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(...interface{}) {
	t.rows++
}

func (t *fakeTable) Render() string {
	return fmt.Sprintf("table(%d)", t.rows)
}

func sampleInventory() []entity.InventoryRecord {
	qty := func(v int64) *int64 { return &v }
	price := func(s string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	return []entity.InventoryRecord{
		{ProductName: "Café", Quantity: qty(2), UnitPrice: price("10"), BranchID: 1, RecordedAt: day("2024-03-01")},
		{ProductName: "Té", Quantity: qty(1), UnitPrice: price("5"), BranchID: 1, RecordedAt: day("2024-03-02")},
		{ProductName: "Café", Quantity: qty(4), UnitPrice: price("10"), BranchID: 2, RecordedAt: day("2024-03-02")},
	}
}

func sampleTransactions() []entity.TransactionRecord {
	total := func(s string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	return []entity.TransactionRecord{
		{ID: 1, TransactionType: "Venta", TotalPrice: total("100"), BranchName: "Norte", OccurredAt: day("2024-03-01")},
		{ID: 2, TransactionType: "Compra", TotalPrice: total("40"), BranchName: "Norte", OccurredAt: day("2024-03-01")},
		{ID: 3, TransactionType: "Devolución", TotalPrice: total("10"), BranchName: "Sur", OccurredAt: day("2024-03-03")},
	}
}
