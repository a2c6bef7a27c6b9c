package export

import (
	"fmt"

	"github.com/go-analyze/charts"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

const (
	chartImageWidth  = 600
	chartImageHeight = 300
)

// skyblue, a mesma cor das barras do relatório original.
var barSeriesColor = charts.Color{R: 135, G: 206, B: 235, A: 255}

// renderChartPNG desenha a variante estática de um gráfico (barras ou
// pizza) como PNG, para ser embutida no documento PDF.
func renderChartPNG(spec entity.ChartSpec, table *entity.ResultTable) ([]byte, error) {
	labels, err := table.StringColumn(spec.CategoryField)
	if err != nil {
		return nil, err
	}
	values, err := table.NumericColumn(spec.ValueField)
	if err != nil {
		return nil, err
	}

	p := charts.NewPainter(charts.PainterOptions{
		OutputFormat: charts.ChartOutputPNG,
		Width:        chartImageWidth,
		Height:       chartImageHeight,
	})

	switch spec.Kind {
	case entity.ChartBar:
		opt := charts.NewBarChartOptionWithData([][]float64{values})
		opt.Title.Text = spec.Title
		opt.XAxis.Labels = labels
		opt.Theme = charts.GetTheme(charts.ThemeLight).
			WithSeriesColors([]charts.Color{barSeriesColor})
		if err := p.BarChart(opt); err != nil {
			return nil, fmt.Errorf("error drawing bar chart: %w", err)
		}
	case entity.ChartPie:
		opt := charts.NewPieChartOptionWithData(values)
		opt.Title.Text = spec.Title
		opt.Legend.SeriesNames = labels
		opt.Legend.Show = charts.Ptr(true)
		if err := p.PieChart(opt); err != nil {
			return nil, fmt.Errorf("error drawing pie chart: %w", err)
		}
	default:
		return nil, fmt.Errorf("no static rendering for %s charts", spec.Kind)
	}

	return p.Bytes()
}
