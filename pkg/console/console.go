package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/stock-analytics-dashboard-go/internal/shared/types"
)

// Console escreve mensagens, tabelas e gráficos do dashboard em um io.Writer.
type Console struct {
	out io.Writer
}

// NewConsole cria um Console ligado ao stdout.
func NewConsole() *Console {
	return NewConsoleWithWriter(os.Stdout)
}

// NewConsoleWithWriter cria um Console que escreve em w.
func NewConsoleWithWriter(w io.Writer) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{out: w}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo, LogWarning, LogError e LogSuccess usam os prefixos do pterm.
func (c *Console) LogInfo(format string, a ...interface{}) {
	fmt.Fprint(c.out, pterm.Info.Sprintfln(format, a...))
}

func (c *Console) LogWarning(format string, a ...interface{}) {
	fmt.Fprint(c.out, pterm.Warning.Sprintfln(format, a...))
}

func (c *Console) LogError(format string, a ...interface{}) {
	fmt.Fprint(c.out, pterm.Error.Sprintfln(format, a...))
}

func (c *Console) LogSuccess(format string, a ...interface{}) {
	fmt.Fprint(c.out, pterm.Success.Sprintfln(format, a...))
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status inicia um spinner enquanto as coleções são carregadas.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table acumula colunas e linhas até o Render.
type Table struct {
	columns []string
	rows    [][]string
}

func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna. As opções são ignoradas pelo renderer pterm.
func (t *Table) AddColumn(name string, _ ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha; linhas curtas são completadas com células vazias.
func (t *Table) AddRow(cells ...interface{}) {
	width := len(cells)
	if len(t.columns) > width {
		width = len(t.columns)
	}
	row := make([]string, width)
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

// Render devolve a tabela formatada como string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	tableData = append(tableData, t.rows...)

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe gráficos de barras com a variação período a período.
func (c *Console) DisplayTrendBars(title string, points []types.TrendPoint) {
	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	if maxValue == 0 {
		c.LogWarning("All values are 0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Period", "Value", "", "Change"},
	}

	var prev *float64

	for _, p := range points {
		barLength := int((p.Value / maxValue) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			change, barColor = describeChange(*prev, p.Value, bar)
		}

		tableData = append(tableData, []string{
			p.Label,
			fmt.Sprintf("%.2f", p.Value),
			barColor,
			change,
		})

		current := p.Value
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Fprintln(c.out, "\n"+panel)
}

// describeChange formata a variação percentual; alta de estoque é verde, queda é vermelha.
func describeChange(prev, current float64, bar string) (string, string) {
	if prev < 0.01 {
		if current < 0.01 {
			return pterm.FgYellow.Sprint("0%"), pterm.FgYellow.Sprint(bar)
		}
		return pterm.FgGreen.Sprint("N/A"), pterm.FgGreen.Sprint(bar)
	}

	changePercent := ((current - prev) / prev) * 100.0
	switch {
	case math.Abs(changePercent) < 0.01:
		return pterm.FgYellow.Sprint("0%"), pterm.FgYellow.Sprint(bar)
	case changePercent > 999:
		return pterm.FgGreen.Sprint(">+999%"), pterm.FgGreen.Sprint(bar)
	case changePercent < -999:
		return pterm.FgRed.Sprint(">-999%"), pterm.FgRed.Sprint(bar)
	case changePercent > 0:
		return pterm.FgGreen.Sprintf("+%.2f%%", changePercent), pterm.FgGreen.Sprint(bar)
	default:
		return pterm.FgRed.Sprintf("%.2f%%", changePercent), pterm.FgRed.Sprint(bar)
	}
}
