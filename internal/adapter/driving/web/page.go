package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

// Relatórios oferecidos no seletor do painel, na ordem de exibição.
var reportChoices = []entity.ReportType{
	entity.ReportAllSales,
	entity.ReportByProduct,
	entity.ReportDailySummary,
	entity.ReportByCategory,
}

// Formatos oferecidos na barra de downloads.
var exportChoices = []string{"csv", "json", "pdf", "xlsx"}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type kpiView struct {
	Label string
	Value string
}

type rowView struct {
	Class string
	Cells []string
}

type exportLink struct {
	Label string
	URL   string
}

type trendView struct {
	Month  string
	Amount string
	Width  int
}

// dashboardPage é o modelo entregue ao template do painel.
type dashboardPage struct {
	Title           string
	ReportLabel     string
	ReportOptions   []optionView
	ProductOptions  []optionView
	CategoryOptions []optionView
	StartDate       string
	EndDate         string
	KPIs            []kpiView
	Trend           []trendView
	Columns         []string
	Rows            []rowView
	RowCount        int
	ChartSrc        string
	Exports         []exportLink
	RefreshSeconds  int
}

func (s *Server) handleDashboard(c *gin.Context) {
	rep, err := s.reportFromQuery(c)
	if err != nil {
		c.String(statusForError(err), err.Error())
		return
	}

	options, err := s.useCase.FilterOptions(c.Request.Context())
	if err != nil {
		c.String(statusForError(err), err.Error())
		return
	}

	page := s.buildDashboardPage(c, rep, options)

	// A tendência mensal é seção secundária; se a consulta falhar, o
	// painel sai sem ela.
	filter, err := s.useCase.BuildFilter(
		c.Query("start_date"),
		c.Query("end_date"),
		c.QueryArray("products"),
		c.QueryArray("categories"),
	)
	if err == nil {
		if trend, err := s.useCase.MonthlyTrend(c.Request.Context(), filter); err == nil {
			page.Trend = trendViews(trend)
		}
	}

	c.HTML(http.StatusOK, "dashboard.html", page)
}

// buildDashboardPage projeta o relatório no modelo do template; as
// camadas de destaque viram classes CSS com os mesmos nomes do JSON.
func (s *Server) buildDashboardPage(c *gin.Context, rep *entity.Report, options entity.FilterOptions) dashboardPage {
	reportType := rep.Type
	selectedProducts := c.QueryArray("products")
	selectedCategories := c.QueryArray("categories")

	query := url.Values{}
	query.Set("report", reportType.Token())
	if v := c.Query("start_date"); v != "" {
		query.Set("start_date", v)
	}
	if v := c.Query("end_date"); v != "" {
		query.Set("end_date", v)
	}
	for _, p := range selectedProducts {
		query.Add("products", p)
	}
	for _, cat := range selectedCategories {
		query.Add("categories", cat)
	}
	encoded := query.Encode()

	page := dashboardPage{
		Title:       "Sales Dashboard",
		ReportLabel: reportType.Label(),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		Columns:     rep.Table.Columns,
		RowCount:    rep.Table.Len(),
		ChartSrc:    "/chart?" + encoded,
	}

	for _, choice := range reportChoices {
		page.ReportOptions = append(page.ReportOptions, optionView{
			Value:    choice.Token(),
			Label:    choice.Label(),
			Selected: choice == reportType,
		})
	}
	for _, product := range options.Products {
		page.ProductOptions = append(page.ProductOptions, optionView{
			Value:    product,
			Label:    product,
			Selected: containsString(selectedProducts, product),
		})
	}
	for _, category := range options.Categories {
		page.CategoryOptions = append(page.CategoryOptions, optionView{
			Value:    category,
			Label:    category,
			Selected: containsString(selectedCategories, category),
		})
	}

	page.KPIs = kpiViews(rep.KPIs)

	for i, row := range rep.Table.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = entity.FormatCell(cell)
		}
		page.Rows = append(page.Rows, rowView{
			Class: rep.Highlights.Tier(i).String(),
			Cells: cells,
		})
	}

	for _, format := range exportChoices {
		page.Exports = append(page.Exports, exportLink{
			Label: strings.ToUpper(format),
			URL:   "/api/export?format=" + format + "&" + encoded,
		})
	}

	if !s.args.Paused {
		page.RefreshSeconds = s.args.RefreshSeconds
	}

	return page
}

// trendViews escala cada mês contra o melhor mês para as barras do
// painel (largura em percentual).
func trendViews(trend []entity.MonthlySales) []trendView {
	var best float64
	for _, m := range trend {
		if m.Amount > best {
			best = m.Amount
		}
	}

	views := make([]trendView, 0, len(trend))
	for _, m := range trend {
		width := 0
		if best > 0 {
			width = int(m.Amount / best * 100)
		}
		views = append(views, trendView{
			Month:  m.Month,
			Amount: fmt.Sprintf("$%.2f", m.Amount),
			Width:  width,
		})
	}
	return views
}

func kpiViews(kpis entity.KPISummary) []kpiView {
	views := []kpiView{
		{Label: "Total Sales", Value: fmt.Sprintf("$%.2f", kpis.TotalAmount)},
	}

	unitsSold := "N/A"
	if kpis.HasQuantity {
		unitsSold = fmt.Sprintf("%.0f", kpis.TotalQuantity)
	}
	views = append(views, kpiView{Label: "Units Sold", Value: unitsSold})

	products := "N/A"
	if kpis.HasProducts {
		products = fmt.Sprintf("%d", kpis.ProductCount)
	}
	views = append(views, kpiView{Label: "Products", Value: products})

	categories := "N/A"
	if kpis.HasCategories {
		categories = fmt.Sprintf("%d", kpis.CategoryCount)
	}
	views = append(views, kpiView{Label: "Categories", Value: categories})

	return views
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
