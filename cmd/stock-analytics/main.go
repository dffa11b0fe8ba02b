package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driven/cache"
	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/stock-analytics-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/stock-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
	"github.com/diillson/stock-analytics-dashboard-go/pkg/console"
	"github.com/diillson/stock-analytics-dashboard-go/pkg/version"
)

func init() {
	// Valores monetários saem como números JSON na API e no export JSON
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	// Logs estruturados vão para stderr; a saída do dashboard fica no stdout
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.WarnLevel)

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, logger)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	sources := func(cfg *types.Config) (repository.RecordRepository, repository.ReportCache, error) {
		reportCache, err := cache.New(cfg.Cache, logger)
		if err != nil {
			return nil, nil, err
		}
		return source.FromConfig(cfg, logger), reportCache, nil
	}

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		exportRepo,
		configRepo,
		consoleImpl,
		logger,
		sources,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
