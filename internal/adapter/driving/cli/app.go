package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driving/api"
	"github.com/diillson/stock-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
	"github.com/diillson/stock-analytics-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	logger           *logrus.Logger
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, logger *logrus.Logger) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		logger:  logger,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "stock-analytics",
		Short:         "Inventory and transaction analytics dashboard",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Stock Analytics Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringSlice("inventory", nil, "Inventory sources: local files, s3://bucket/key or mysql://table (comma-separated)")
	flags.StringSlice("transactions", nil, "Transaction sources: local files, s3://bucket/key or mysql://table (comma-separated)")
	flags.Int64("branch-id", 0, "Only include inventory of this branch id")
	flags.String("branch-name", "", "Only include transactions of this branch name")
	flags.String("start", "", "First day of the date range (YYYY-MM-DD)")
	flags.String("end", "", "Last day of the date range (YYYY-MM-DD)")
	flags.String("search", "", "Only include products whose name contains this term in the composition")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, xlsx (default: csv)")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.Bool("trend", false, "Display the inventory value trend as bars")
	flags.String("period", "month", "Period used by --trend: day, week, month or year")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard analytics over HTTP",
		RunE:  app.serveCommand,
	}
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	inventory, _ := flags.GetStringSlice("inventory")
	transactions, _ := flags.GetStringSlice("transactions")
	branchID, _ := flags.GetInt64("branch-id")
	branchName, _ := flags.GetString("branch-name")
	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	search, _ := flags.GetString("search")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	trend, _ := flags.GetBool("trend")
	period, _ := flags.GetString("period")

	// Convert to absolute path
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	// branch-id 0 é um filtro válido quando informado explicitamente
	var branchIDPtr *int64
	if flags.Changed("branch-id") {
		branchIDPtr = &branchID
	}

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		Inventory:    inventory,
		Transactions: transactions,
		BranchID:     branchIDPtr,
		BranchName:   branchName,
		Start:        start,
		End:          end,
		Search:       search,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		Trend:        trend,
		Period:       period,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// serveCommand carrega as fontes uma vez e serve a API até receber SIGINT ou SIGTERM.
func (app *CLIApp) serveCommand(cmd *cobra.Command, _ []string) error {
	app.logger.SetLevel(logrus.InfoLevel)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.dashboardUseCase.ResolveConfig(cliArgs)
	if err != nil {
		return err
	}

	service, err := app.dashboardUseCase.NewService(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := service.Refresh(ctx, nil)
	if err != nil {
		return err
	}
	if msg := outcome.Message(); msg != "" {
		app.logger.Warn(msg)
	}

	return api.NewServer(service, cfg.Server, app.logger).Run(ctx)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
