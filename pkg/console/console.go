package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

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

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria uma barra de progresso para os itens especificados.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(items)).Start()
	return &progressHandle{bar: bar}
}

func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Processing sales data").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayKPIs exibe os indicadores principais do relatório atual.
func (c *Console) DisplayKPIs(kpis types.KPISummary) {
	naIfMissing := func(present bool, value string) string {
		if !present {
			return pterm.FgGray.Sprint("N/A")
		}
		return value
	}

	tableData := pterm.TableData{
		{"Total Sales", "Units Sold", "Products", "Categories"},
		{
			BrightGreen(fmt.Sprintf("$%.2f", kpis.TotalAmount)),
			naIfMissing(kpis.HasQuantity, fmt.Sprintf("%.0f", kpis.TotalQuantity)),
			naIfMissing(kpis.HasProducts, fmt.Sprintf("%d", kpis.ProductCount)),
			naIfMissing(kpis.HasCategories, fmt.Sprintf("%d", kpis.CategoryCount)),
		},
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Key Metrics").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayTrendBars exibe gráficos de barras para análise de tendências.
func (c *Console) DisplayTrendBars(monthlySales []types.MonthlySales) {
	// Encontra o valor máximo para escala
	maxAmount := 0.0
	for _, month := range monthlySales {
		if month.Amount > maxAmount {
			maxAmount = month.Amount
		}
	}

	if maxAmount == 0 {
		pterm.Warning.Println("All sales are $0.00 for this period")
		return
	}

	// Cria um panel com tabela de barras
	tableData := pterm.TableData{
		{"Month", "Sales", "", "MoM Change"},
	}

	var prevAmount *float64

	for _, ms := range monthlySales {
		// Calcula tamanho da barra
		barLength := int((ms.Amount / maxAmount) * 40)
		bar := strings.Repeat("█", barLength)

		// Cores e símbolos padrão; crescimento em vendas é positivo
		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevAmount != nil {
			// Calcula mudança percentual mês a mês
			if *prevAmount < 0.01 {
				if ms.Amount < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprint("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := ((ms.Amount - *prevAmount) / *prevAmount) * 100.0

				if math.Abs(changePercent) < 0.01 {
					change = pterm.FgYellow.Sprintf("0%%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else if math.Abs(changePercent) > 999 {
					if changePercent > 0 {
						change = pterm.FgGreen.Sprint(">+999%")
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprint(">-999%")
						barColor = pterm.FgRed.Sprint(bar)
					}
				} else {
					if changePercent > 0 {
						change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
						barColor = pterm.FgRed.Sprint(bar)
					}
				}
			}
		}

		tableData = append(tableData, []string{
			ms.Month,
			fmt.Sprintf("$%.2f", ms.Amount),
			barColor,
			change,
		})

		currentAmount := ms.Amount
		prevAmount = &currentAmount
	}

	// Renderiza a tabela
	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Monthly Sales Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
