package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

var periodKinds = []entity.PeriodKind{entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear}

// --- CSV ---

// ExportToCSV writes every section of the report as rows of a single sheet, tagged by section.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{{"Section", "Key", "Value", "Share"}}
	for _, kind := range periodKinds {
		for _, b := range report.Valuation.ByKind(kind) {
			rows = append(rows, []string{"valuation_" + string(kind), b.Key, b.TotalValue.StringFixed(2), ""})
		}
	}
	for _, c := range report.Composition {
		rows = append(rows, []string{"composition", c.ProductName, strconv.FormatInt(c.Quantity, 10), fmt.Sprintf("%.2f", c.Percentage)})
	}
	for _, t := range report.TransactionTypes {
		rows = append(rows, []string{"transaction_type", t.TypeName, strconv.Itoa(t.Count), ""})
	}
	for _, b := range report.Balance {
		rows = append(rows, []string{"balance", string(b.Category), b.Total.StringFixed(2), ""})
	}
	rows = append(rows, []string{"balance", "Net", report.NetBalance().StringFixed(2), ""})

	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("error writing CSV rows: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- JSON ---

func (r *ExportRepositoryImpl) ExportToJSON(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- XLSX ---

// ExportToXLSX grava uma planilha por seção do relatório.
func (r *ExportRepositoryImpl) ExportToXLSX(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Valuation"); err != nil {
		return "", fmt.Errorf("error preparing workbook: %w", err)
	}
	valuation := [][]interface{}{{"Period", "Key", "Total Value"}}
	for _, kind := range periodKinds {
		for _, b := range report.Valuation.ByKind(kind) {
			valuation = append(valuation, []interface{}{string(kind), b.Key, b.TotalValue.InexactFloat64()})
		}
	}

	composition := [][]interface{}{{"Product", "Quantity", "Percentage"}}
	for _, c := range report.Composition {
		composition = append(composition, []interface{}{c.ProductName, c.Quantity, c.Percentage})
	}

	types := [][]interface{}{{"Transaction Type", "Count"}}
	for _, t := range report.TransactionTypes {
		types = append(types, []interface{}{t.TypeName, t.Count})
	}

	balance := [][]interface{}{{"Category", "Total"}}
	for _, b := range report.Balance {
		balance = append(balance, []interface{}{string(b.Category), b.Total.InexactFloat64()})
	}
	balance = append(balance, []interface{}{"Net", report.NetBalance().InexactFloat64()})

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"Valuation", valuation},
		{"Composition", composition},
		{"Transactions", types},
		{"Balance", balance},
	}

	for i, sheet := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return "", fmt.Errorf("error creating sheet %s: %w", sheet.name, err)
			}
		}
		for rowIdx, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return "", err
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return "", fmt.Errorf("error writing sheet %s: %w", sheet.name, err)
			}
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- PDF ---

func (r *ExportRepositoryImpl) ExportToPDF(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Stock Analytics Dashboard | %s", report.GeneratedAt.Format("2006-01-02 15:04"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(headers []string, widths []float64, rows [][]string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		if len(rows) == 0 {
			pdf.CellFormat(0, 6, tr("No data"), "", 1, "L", false, 0, "")
		}
		for _, row := range rows {
			for i, cell := range row {
				align := "L"
				if i > 0 {
					align = "R"
				}
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Stock Analytics Dashboard"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr("  "+describeQuery(report.Query)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Inventory records: %d   Transactions: %d", report.InventoryCount, report.TransactionCount)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	for _, kind := range periodKinds {
		buckets := report.Valuation.ByKind(kind)
		rows := make([][]string, 0, len(buckets))
		for _, b := range buckets {
			rows = append(rows, []string{b.Key, "$" + b.TotalValue.StringFixed(2)})
		}
		drawSectionTitle(fmt.Sprintf("Inventory Value by %s", cases.Title(language.English).String(string(kind))))
		drawTable([]string{"Period", "Total Value"}, []float64{95, 95}, rows)
	}

	compRows := make([][]string, 0, len(report.Composition))
	for _, c := range report.Composition {
		compRows = append(compRows, []string{c.ProductName, strconv.FormatInt(c.Quantity, 10), fmt.Sprintf("%.2f%%", c.Percentage)})
	}
	drawSectionTitle("Inventory Composition")
	drawTable([]string{"Product", "Quantity", "Share"}, []float64{100, 45, 45}, compRows)

	typeRows := make([][]string, 0, len(report.TransactionTypes))
	for _, t := range report.TransactionTypes {
		typeRows = append(typeRows, []string{t.TypeName, strconv.Itoa(t.Count)})
	}
	drawSectionTitle("Transactions by Type")
	drawTable([]string{"Type", "Count"}, []float64{95, 95}, typeRows)

	balanceRows := make([][]string, 0, len(report.Balance)+1)
	for _, b := range report.Balance {
		balanceRows = append(balanceRows, []string{string(b.Category), "$" + b.Total.StringFixed(2)})
	}
	balanceRows = append(balanceRows, []string{"Net", "$" + report.NetBalance().StringFixed(2)})
	drawSectionTitle("Income vs Expense")
	drawTable([]string{"Category", "Total"}, []float64{95, 95}, balanceRows)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// describeQuery resume os filtros aplicados em uma linha.
func describeQuery(q entity.Query) string {
	parts := []string{}
	if q.Branch.ID != nil {
		parts = append(parts, fmt.Sprintf("Branch ID: %d", *q.Branch.ID))
	}
	if q.Branch.Name != "" {
		parts = append(parts, "Branch: "+q.Branch.Name)
	}
	if q.Range.Start != nil {
		parts = append(parts, "From: "+q.Range.Start.Format("2006-01-02"))
	}
	if q.Range.End != nil {
		parts = append(parts, "To: "+q.Range.End.Format("2006-01-02"))
	}
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", q.Search))
	}
	if len(parts) == 0 {
		return "All branches, all dates"
	}
	return strings.Join(parts, "   ")
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
