package export

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

const chartPageHeight = "520px"

// RenderChartPage monta a página HTML do gráfico interativo projetado
// para o relatório, na ordem em que a consulta devolveu as linhas.
func (r *ExportRepositoryImpl) RenderChartPage(rep *entity.Report) ([]byte, error) {
	if rep.Chart == nil {
		return nil, fmt.Errorf("report has no chart to render")
	}
	spec := *rep.Chart
	table := rep.Table

	labels, err := table.StringColumn(spec.CategoryField)
	if err != nil {
		return nil, err
	}
	values, err := table.NumericColumn(spec.ValueField)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch spec.Kind {
	case entity.ChartLine:
		err = renderLinePage(&buf, spec, labels, values)
	case entity.ChartPie:
		err = renderPiePage(&buf, spec, labels, values)
	default:
		err = renderBarPage(&buf, spec, table, labels, values)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBarPage(buf *bytes.Buffer, spec entity.ChartSpec, table *entity.ResultTable, labels []string, values []float64) error {
	bar := charts.NewBar()
	globalOpts := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: spec.Title, Width: "100%", Height: chartPageHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"}}),
	}

	switch {
	case spec.ColorField != "" && spec.ColorField == spec.ValueField:
		// Escala contínua de cor pelo próprio valor.
		maxVal := 0.0
		for _, v := range values {
			if v > maxVal {
				maxVal = v
			}
		}
		globalOpts = append(globalOpts, charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: float32(maxVal),
			InRange: &opts.VisualMapInRange{Color: []string{"#deebf7", "#9ecae1", "#3182bd"}},
		}))
		bar.SetGlobalOptions(globalOpts...)
		bar.SetXAxis(labels)
		bar.AddSeries("Sales Amount", barData(values))
	case spec.ColorField != "":
		// Uma série por valor distinto da coluna de cor.
		groups, err := table.StringColumn(spec.ColorField)
		if err != nil {
			return err
		}
		globalOpts = append(globalOpts, charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}))
		bar.SetGlobalOptions(globalOpts...)
		bar.SetXAxis(labels)
		for _, group := range distinctInOrder(groups) {
			data := make([]opts.BarData, len(values))
			for i, v := range values {
				if groups[i] == group {
					data[i] = opts.BarData{Value: v}
				} else {
					data[i] = opts.BarData{Value: "-"}
				}
			}
			bar.AddSeries(group, data)
		}
	default:
		bar.SetGlobalOptions(globalOpts...)
		bar.SetXAxis(labels)
		bar.AddSeries("Sales Amount", barData(values))
	}

	if err := bar.Render(buf); err != nil {
		return fmt.Errorf("error rendering bar chart page: %w", err)
	}
	return nil
}

func renderLinePage(buf *bytes.Buffer, spec entity.ChartSpec, labels []string, values []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: spec.Title, Width: "100%", Height: chartPageHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"}}),
	)
	line.SetXAxis(labels)

	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	seriesOpts := []charts.SeriesOpts{
		charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
	}
	if spec.Markers {
		seriesOpts = append(seriesOpts, charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(true),
			Symbol:     "circle",
		}))
	}
	line.AddSeries("Sales Amount", data, seriesOpts...)

	if err := line.Render(buf); err != nil {
		return fmt.Errorf("error rendering line chart page: %w", err)
	}
	return nil
}

func renderPiePage(buf *bytes.Buffer, spec entity.ChartSpec, labels []string, values []float64) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: spec.Title, Width: "100%", Height: chartPageHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	data := make([]opts.PieData, len(values))
	for i, v := range values {
		data[i] = opts.PieData{Name: labels[i], Value: v}
	}
	pie.AddSeries("Sales Amount", data).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{Radius: "60%"}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
		)

	if err := pie.Render(buf); err != nil {
		return fmt.Errorf("error rendering pie chart page: %w", err)
	}
	return nil
}

func barData(values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func distinctInOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
