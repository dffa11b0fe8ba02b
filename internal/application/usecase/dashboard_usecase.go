package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

const dateLayout = "2006-01-02"

// SourceFactory builds the record repository and report cache for a resolved configuration.
type SourceFactory func(cfg *types.Config) (repository.RecordRepository, repository.ReportCache, error)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	logger     *logrus.Logger
	sources    SourceFactory
	now        func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	logger *logrus.Logger,
	sources SourceFactory,
) *DashboardUseCase {
	return &DashboardUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		logger:     logger,
		sources:    sources,
		now:        time.Now,
	}
}

// ResolveConfig carrega o arquivo de configuração e sobrepõe as flags da linha de comando.
func (uc *DashboardUseCase) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return nil, err
	}

	if len(args.Inventory) > 0 {
		cfg.Inventory = args.Inventory
	}
	if len(args.Transactions) > 0 {
		cfg.Transactions = args.Transactions
	}
	if args.BranchID != nil {
		cfg.BranchID = args.BranchID
	}
	if args.BranchName != "" {
		cfg.BranchName = args.BranchName
	}
	if args.Start != "" {
		cfg.Start = args.Start
	}
	if args.End != "" {
		cfg.End = args.End
	}
	if args.Search != "" {
		cfg.Search = args.Search
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		cfg.Dir = args.Dir
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		uc.logger.SetLevel(level)
	}

	return cfg, nil
}

// ParseQuery builds a Query from raw filter values. Dates are YYYY-MM-DD calendar days.
func ParseQuery(branchID *int64, branchName, start, end, search string) (entity.Query, error) {
	q := entity.Query{
		Branch: entity.BranchSelector{ID: branchID, Name: strings.TrimSpace(branchName)},
		Search: search,
	}

	var err error
	if q.Range.Start, err = parseDay(start); err != nil {
		return entity.Query{}, err
	}
	if q.Range.End, err = parseDay(end); err != nil {
		return entity.Query{}, err
	}
	if q.Range.Start != nil && q.Range.End != nil && q.Range.Start.After(*q.Range.End) {
		return entity.Query{}, fmt.Errorf("%w: %s > %s", types.ErrInvalidRange, start, end)
	}

	return q, nil
}

// BuildQuery extrai a consulta da configuração resolvida.
func BuildQuery(cfg *types.Config) (entity.Query, error) {
	return ParseQuery(cfg.BranchID, cfg.BranchName, cfg.Start, cfg.End, cfg.Search)
}

func parseDay(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidDate, value)
	}
	return &t, nil
}

// ParsePeriod valida o nome de um período de agregação.
func ParsePeriod(value string) (entity.PeriodKind, error) {
	switch kind := entity.PeriodKind(strings.ToLower(strings.TrimSpace(value))); kind {
	case "":
		return entity.PeriodMonth, nil
	case entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedPeriod, value)
	}
}

// NewService cria o serviço de análise para as fontes configuradas.
func (uc *DashboardUseCase) NewService(cfg *types.Config) (*AnalyticsService, error) {
	if len(cfg.Inventory) == 0 && len(cfg.Transactions) == 0 {
		return nil, types.ErrNoSources
	}

	records, cache, err := uc.sources(cfg)
	if err != nil {
		return nil, err
	}

	service := NewAnalyticsService(records, cache, uc.logger)
	service.SetClock(uc.now)
	return service, nil
}

// RunDashboard loads the records once, prints the dashboard and writes the requested exports.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	q, err := BuildQuery(cfg)
	if err != nil {
		return err
	}

	period, err := ParsePeriod(args.Period)
	if err != nil {
		return err
	}

	reportTypes, err := resolveReportTypes(cfg)
	if err != nil {
		return err
	}

	service, err := uc.NewService(cfg)
	if err != nil {
		return err
	}

	status := uc.console.Status("Loading inventory and transactions...")
	outcome, err := service.Refresh(ctx, q.Branch.ID)
	status.Stop()
	if err != nil {
		return err
	}
	if msg := outcome.Message(); msg != "" {
		uc.console.LogWarning(msg)
	}

	report, err := service.Report(ctx, q)
	if err != nil {
		return err
	}

	if args.Trend {
		uc.displayTrend(report, period)
	} else {
		uc.displayReport(report)
	}

	uc.exportReport(report, cfg.ReportName, cfg.Dir, reportTypes)
	return nil
}

// resolveReportTypes valida os formatos de exportação; csv é o padrão quando há um nome de relatório.
func resolveReportTypes(cfg *types.Config) ([]string, error) {
	if cfg.ReportName == "" {
		return nil, nil
	}
	if len(cfg.ReportType) == 0 {
		return []string{"csv"}, nil
	}

	reportTypes := make([]string, 0, len(cfg.ReportType))
	for _, t := range cfg.ReportType {
		t = strings.ToLower(strings.TrimSpace(t))
		switch t {
		case "csv", "json", "pdf", "xlsx":
			reportTypes = append(reportTypes, t)
		default:
			return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, t)
		}
	}
	return reportTypes, nil
}

func (uc *DashboardUseCase) exportReport(report entity.DashboardReport, name, dir string, reportTypes []string) {
	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)

		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, name, dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, name, dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, name, dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, name, dir)
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", label, path)
	}
}

// displayReport imprime as tabelas do dashboard.
func (uc *DashboardUseCase) displayReport(report entity.DashboardReport) {
	uc.console.Printf("\n%s\n", pterm.FgMagenta.Sprint(describeQuery(report.Query)))
	uc.console.Printf("%s\n\n", pterm.FgGray.Sprintf("Inventory records: %d | Transactions: %d | Run: %s",
		report.InventoryCount, report.TransactionCount, report.RunID))

	valuation := uc.console.CreateTable()
	valuation.AddColumn("Period")
	valuation.AddColumn("Key")
	valuation.AddColumn("Inventory Value")
	for _, kind := range []entity.PeriodKind{entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear} {
		for _, b := range report.Valuation.ByKind(kind) {
			valuation.AddRow(pterm.FgCyan.Sprint(string(kind)), b.Key, formatMoney(b.TotalValue.StringFixed(2)))
		}
	}
	uc.console.Print(valuation.Render())

	composition := uc.console.CreateTable()
	composition.AddColumn("Product")
	composition.AddColumn("Quantity")
	composition.AddColumn("Share")
	for _, c := range report.Composition {
		composition.AddRow(pterm.FgYellow.Sprint(c.ProductName), c.Quantity, fmt.Sprintf("%.2f%%", c.Percentage))
	}
	if len(report.Composition) == 0 {
		composition.AddRow(pterm.FgGray.Sprint("No inventory"), "", "")
	}
	uc.console.Print(composition.Render())

	transactionTypes := uc.console.CreateTable()
	transactionTypes.AddColumn("Transaction Type")
	transactionTypes.AddColumn("Count")
	for _, t := range report.TransactionTypes {
		transactionTypes.AddRow(t.TypeName, t.Count)
	}
	if len(report.TransactionTypes) == 0 {
		transactionTypes.AddRow(pterm.FgGray.Sprint("No transactions"), "")
	}
	uc.console.Print(transactionTypes.Render())

	balance := uc.console.CreateTable()
	balance.AddColumn("Category")
	balance.AddColumn("Total")
	for _, b := range report.Balance {
		style := pterm.FgGreen
		if b.Category == entity.Expense {
			style = pterm.FgRed
		}
		balance.AddRow(style.Sprint(string(b.Category)), formatMoney(b.Total.StringFixed(2)))
	}
	net := report.NetBalance()
	netStyle := pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	if net.IsNegative() {
		netStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	}
	balance.AddRow("Net", netStyle.Sprint(formatMoney(net.StringFixed(2))))
	uc.console.Print(balance.Render())
}

// displayTrend mostra a valorização do estoque por período como barras.
func (uc *DashboardUseCase) displayTrend(report entity.DashboardReport, period entity.PeriodKind) {
	uc.console.LogInfo("Analysing inventory value trend...")

	buckets := report.Valuation.ByKind(period)
	if len(buckets) == 0 {
		uc.console.LogWarning("No inventory value available for the selected filters")
		return
	}

	points := make([]types.TrendPoint, len(buckets))
	for i, b := range buckets {
		points[i] = types.TrendPoint{Label: b.Key, Value: b.TotalValue.InexactFloat64()}
	}

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint(describeQuery(report.Query)))
	uc.console.DisplayTrendBars(fmt.Sprintf("Inventory value by %s", period), points)
}

func formatMoney(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return "-$" + amount[1:]
	}
	return "$" + amount
}

func describeQuery(q entity.Query) string {
	parts := []string{}
	if !q.Branch.IsZero() {
		if q.Branch.ID != nil {
			parts = append(parts, fmt.Sprintf("Branch ID %d", *q.Branch.ID))
		}
		if q.Branch.Name != "" {
			parts = append(parts, "Branch "+q.Branch.Name)
		}
	}
	if !q.Range.IsZero() {
		from, to := "…", "…"
		if q.Range.Start != nil {
			from = q.Range.Start.Format(dateLayout)
		}
		if q.Range.End != nil {
			to = q.Range.End.Format(dateLayout)
		}
		parts = append(parts, fmt.Sprintf("%s to %s", from, to))
	}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if len(parts) == 0 {
		return "All branches, all dates"
	}
	return strings.Join(parts, " | ")
}
