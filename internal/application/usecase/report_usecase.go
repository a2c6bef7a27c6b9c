package usecase

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/report"
	"github.com/rmarques/sales-dashboard-go/internal/domain/repository"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// ReportUseCase handles report materialization and delivery.
type ReportUseCase struct {
	salesFactory repository.SalesRepositoryFactory
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface

	mu    sync.Mutex
	sales repository.SalesRepository
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	salesFactory repository.SalesRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		salesFactory: salesFactory,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		console:      console,
	}
}

// Store abre o repositório de vendas na primeira chamada e o reusa em
// seguida; o caminho do banco só é conhecido depois do parse das flags.
func (uc *ReportUseCase) Store(dbPath string) (repository.SalesRepository, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.sales != nil {
		return uc.sales, nil
	}
	store, err := uc.salesFactory(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales database %q: %w", dbPath, err)
	}
	uc.sales = store
	return store, nil
}

// Close fecha o repositório de vendas, se aberto.
func (uc *ReportUseCase) Close() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.sales == nil {
		return nil
	}
	err := uc.sales.Close()
	uc.sales = nil
	return err
}

func (uc *ReportUseCase) openedStore() (repository.SalesRepository, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.sales == nil {
		return nil, fmt.Errorf("sales store is not open")
	}
	return uc.sales, nil
}

// ResolveArgs aplica a precedência de configuração: flags, depois o
// arquivo de configuração, depois variáveis de ambiente e por fim os
// padrões embutidos. O intervalo de atualização fica preso entre 5 e 60s.
func (uc *ReportUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		applyConfig(args, cfg)
	}

	if args.Database == "" {
		args.Database = os.Getenv("SALESDASH_DB")
	}
	if args.ListenAddr == "" {
		args.ListenAddr = os.Getenv("SALESDASH_ADDR")
	}

	if args.Database == "" {
		args.Database = "sales.db"
	}
	if args.ListenAddr == "" {
		args.ListenAddr = ":8080"
	}
	switch {
	case args.RefreshSeconds == 0:
		args.RefreshSeconds = 10
	case args.RefreshSeconds < 5:
		args.RefreshSeconds = 5
	case args.RefreshSeconds > 60:
		args.RefreshSeconds = 60
	}
	return nil
}

func applyConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Database == "" {
		args.Database = cfg.Database
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if args.ReportType == "" {
		args.ReportType = cfg.ReportType
	}
	if len(args.ExportFormats) == 0 {
		args.ExportFormats = cfg.ExportFormats
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.StartDate == "" {
		args.StartDate = cfg.StartDate
	}
	if args.EndDate == "" {
		args.EndDate = cfg.EndDate
	}
	if len(args.Products) == 0 {
		args.Products = cfg.Products
	}
	if len(args.Categories) == 0 {
		args.Categories = cfg.Categories
	}
	if !args.Trend {
		args.Trend = cfg.Trend
	}
	if args.ListenAddr == "" {
		args.ListenAddr = cfg.ListenAddr
	}
	if args.RefreshSeconds == 0 {
		args.RefreshSeconds = cfg.RefreshSeconds
	}
	if !args.Paused {
		args.Paused = cfg.Paused
	}
}

// BuildFilter monta o filtro a partir das datas em texto e dos
// conjuntos de produtos e categorias; conjuntos vazios significam "tudo".
func (uc *ReportUseCase) BuildFilter(startDate, endDate string, products, categories []string) (entity.Filter, error) {
	var filter entity.Filter
	if startDate != "" {
		t, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return entity.Filter{}, fmt.Errorf("%w: start date %q", types.ErrInvalidDate, startDate)
		}
		filter.StartDate = t
	}
	if endDate != "" {
		t, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return entity.Filter{}, fmt.Errorf("%w: end date %q", types.ErrInvalidDate, endDate)
		}
		filter.EndDate = t
	}
	filter.Products = products
	filter.Categories = categories

	if err := filter.Validate(); err != nil {
		return entity.Filter{}, err
	}
	return filter, nil
}

// BuildReport executa um ciclo completo de materialização: consulta,
// destaques, projeção de gráfico e KPIs.
func (uc *ReportUseCase) BuildReport(ctx context.Context, reportType entity.ReportType, filter entity.Filter) (*entity.Report, error) {
	store, err := uc.openedStore()
	if err != nil {
		return nil, err
	}

	query, err := report.BuildQuery(reportType, filter)
	if err != nil {
		return nil, err
	}
	table, err := store.ExecuteReport(ctx, query)
	if err != nil {
		return nil, err
	}
	highlights, err := report.ComputeHighlights(table)
	if err != nil {
		return nil, err
	}
	chart, err := report.ProjectChart(reportType, table)
	if err != nil {
		return nil, err
	}
	kpis, err := report.Summarize(table)
	if err != nil {
		return nil, err
	}

	return &entity.Report{
		Type:       reportType,
		Filter:     filter,
		Table:      table,
		Highlights: highlights,
		Chart:      chart,
		KPIs:       kpis,
	}, nil
}

// FilterOptions lista os valores de filtro disponíveis no banco.
func (uc *ReportUseCase) FilterOptions(ctx context.Context) (entity.FilterOptions, error) {
	store, err := uc.openedStore()
	if err != nil {
		return entity.FilterOptions{}, err
	}
	return store.FilterOptions(ctx)
}

// MonthlyTrend agrega as vendas mês a mês sob o filtro atual.
func (uc *ReportUseCase) MonthlyTrend(ctx context.Context, filter entity.Filter) ([]entity.MonthlySales, error) {
	store, err := uc.openedStore()
	if err != nil {
		return nil, err
	}
	return store.TrendByMonth(ctx, filter)
}

// RenderExport produz os bytes de um artefato para download direto,
// junto com o content type correspondente.
func (uc *ReportUseCase) RenderExport(rep *entity.Report, format string) ([]byte, string, error) {
	switch format {
	case "xlsx":
		data, err := uc.exportRepo.RenderSpreadsheet(rep)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case "pdf":
		data, err := uc.exportRepo.RenderDocument(rep, rep.Type.Label())
		return data, "application/pdf", err
	case "csv":
		data, err := uc.exportRepo.RenderCSV(rep.Table)
		return data, "text/csv", err
	case "json":
		data, err := uc.exportRepo.RenderJSON(rep)
		return data, "application/json", err
	case "html":
		data, err := uc.exportRepo.RenderChartPage(rep)
		return data, "text/html; charset=utf-8", err
	default:
		return nil, "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, format)
	}
}

// RunDashboard executa a funcionalidade principal do painel no terminal.
func (uc *ReportUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}

	reportType, err := entity.ParseReportType(args.ReportType)
	if err != nil {
		return err
	}
	filter, err := uc.BuildFilter(args.StartDate, args.EndDate, args.Products, args.Categories)
	if err != nil {
		return err
	}

	if _, err := uc.Store(args.Database); err != nil {
		return err
	}

	// Análise de tendência substitui o painel quando solicitada
	if args.Trend {
		return uc.runTrend(ctx, filter)
	}

	status := uc.console.Status(fmt.Sprintf("Building report: %s...", reportType.Label()))
	rep, err := uc.BuildReport(ctx, reportType, filter)
	if err != nil {
		status.Stop()
		return err
	}
	status.Stop()

	uc.console.LogInfo("%s (%d rows)", reportType.Label(), rep.Table.Len())
	uc.console.DisplayKPIs(toConsoleKPIs(rep.KPIs))
	uc.displayReportTable(rep)

	// Exporta os artefatos solicitados
	if args.ReportName != "" && len(args.ExportFormats) > 0 {
		uc.exportReport(rep, args)
	}

	return nil
}

// RunSeed popula o banco com o conjunto de demonstração.
func (uc *ReportUseCase) RunSeed(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}
	store, err := uc.Store(args.Database)
	if err != nil {
		return err
	}

	inserted, err := store.SeedDemo(ctx)
	if err != nil {
		return err
	}
	if inserted == 0 {
		uc.console.LogInfo("Sales database already has data; nothing to seed")
		return nil
	}
	uc.console.LogSuccess("Seeded %d demo sales into %s", inserted, args.Database)
	return nil
}

func (uc *ReportUseCase) runTrend(ctx context.Context, filter entity.Filter) error {
	status := uc.console.Status("Analyzing monthly sales trend...")
	trend, err := uc.MonthlyTrend(ctx, filter)
	status.Stop()
	if err != nil {
		return err
	}
	if len(trend) == 0 {
		uc.console.LogWarning("No sales matched the current filter; nothing to chart")
		return nil
	}
	uc.console.DisplayTrendBars(toConsoleTrend(trend))
	return nil
}

// displayReportTable imprime a tabela com as mesmas camadas de
// destaque dos artefatos exportados: TopN em amarelo, banda A em ciano.
func (uc *ReportUseCase) displayReportTable(rep *entity.Report) {
	if rep.Table.Len() == 0 {
		uc.console.LogWarning("No sales matched the current filter")
	}

	table := uc.console.CreateTable()
	for _, col := range rep.Table.Columns {
		table.AddColumn(col)
	}
	for i, row := range rep.Table.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			text := entity.FormatCell(cell)
			switch rep.Highlights.Tier(i) {
			case entity.TierTopN:
				cells[j] = pterm.FgYellow.Sprint(text)
			case entity.TierAlternateA:
				cells[j] = pterm.FgCyan.Sprint(text)
			default:
				cells[j] = text
			}
		}
		table.AddRow(cells...)
	}
	uc.console.Print(table.Render())
}

// exportReport faz o fan-out para os formatos pedidos, registrando
// sucesso ou falha de cada artefato individualmente.
func (uc *ReportUseCase) exportReport(rep *entity.Report, args *types.CLIArgs) {
	title := rep.Type.Label()
	for _, format := range args.ExportFormats {
		switch format {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(rep, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(rep, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(rep, args.ReportName, args.Dir, title)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(rep, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		case "html":
			htmlPath, err := uc.exportRepo.ExportToHTML(rep, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export chart page to HTML: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported chart page to HTML: %s", htmlPath)
			}
		default:
			uc.console.LogWarning("Unsupported export format '%s'", format)
		}
	}
}

func toConsoleKPIs(k entity.KPISummary) types.KPISummary {
	return types.KPISummary{
		TotalAmount:   k.TotalAmount,
		TotalQuantity: k.TotalQuantity,
		ProductCount:  k.ProductCount,
		CategoryCount: k.CategoryCount,
		HasQuantity:   k.HasQuantity,
		HasProducts:   k.HasProducts,
		HasCategories: k.HasCategories,
	}
}

func toConsoleTrend(sales []entity.MonthlySales) []types.MonthlySales {
	out := make([]types.MonthlySales, len(sales))
	for i, m := range sales {
		out[i] = types.MonthlySales{Month: m.Month, Amount: m.Amount}
	}
	return out
}
