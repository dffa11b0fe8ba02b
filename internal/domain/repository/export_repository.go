package repository

import (
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a dashboard report to disk and returns the absolute file path.
type ExportRepository interface {
	ExportToCSV(report entity.DashboardReport, filename, outputDir string) (string, error)
	ExportToJSON(report entity.DashboardReport, filename, outputDir string) (string, error)
	ExportToPDF(report entity.DashboardReport, filename, outputDir string) (string, error)
	ExportToXLSX(report entity.DashboardReport, filename, outputDir string) (string, error)
}
