package report

import (
	"fmt"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// ProjectChart maps a report type onto the chart its table supports.
// The projection never re-sorts rows; the query ordering is what the
// chart shows.
func ProjectChart(t entity.ReportType, table *entity.ResultTable) (*entity.ChartSpec, error) {
	var spec entity.ChartSpec
	switch t {
	case entity.ReportByProduct:
		spec = entity.ChartSpec{
			Kind:          entity.ChartBar,
			CategoryField: "product_name",
			ValueField:    "total_amount",
			ColorField:    "total_amount",
			Title:         "Sales Amount by Product",
		}
	case entity.ReportDailySummary:
		spec = entity.ChartSpec{
			Kind:          entity.ChartLine,
			CategoryField: "sale_date",
			ValueField:    "total_amount",
			Title:         "Daily Sales Amount",
			Markers:       true,
		}
	case entity.ReportByCategory:
		spec = entity.ChartSpec{
			Kind:          entity.ChartPie,
			CategoryField: "category",
			ValueField:    "total_amount",
			Title:         "Sales Amount by Category",
		}
	case entity.ReportAllSales:
		spec = entity.ChartSpec{
			Kind:          entity.ChartBar,
			CategoryField: "product_name",
			ValueField:    "amount",
			ColorField:    "category",
			Title:         "Sales Amount by Product",
		}
	default:
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownReportType, int(t))
	}

	for _, col := range []string{spec.CategoryField, spec.ValueField, spec.ColorField} {
		if col != "" && !table.HasColumn(col) {
			return nil, fmt.Errorf("%w: chart needs %s", types.ErrColumnMissing, col)
		}
	}
	return &spec, nil
}

// StaticChart decides what to draw when only the table shape is known,
// for renderers embedding a picture of arbitrary results: bar over
// product_name when present, otherwise pie over category, otherwise
// nothing. Tables without rows or without an amount column get no
// chart.
func StaticChart(table *entity.ResultTable) (entity.ChartSpec, bool) {
	if table.Len() == 0 {
		return entity.ChartSpec{}, false
	}
	valueCol, err := table.AmountColumn()
	if err != nil {
		return entity.ChartSpec{}, false
	}

	switch {
	case table.HasColumn("product_name"):
		return entity.ChartSpec{
			Kind:          entity.ChartBar,
			CategoryField: "product_name",
			ValueField:    valueCol,
			Title:         "Sales by Product",
		}, true
	case table.HasColumn("category"):
		return entity.ChartSpec{
			Kind:          entity.ChartPie,
			CategoryField: "category",
			ValueField:    valueCol,
			Title:         "Sales by Category",
		}, true
	default:
		return entity.ChartSpec{}, false
	}
}
