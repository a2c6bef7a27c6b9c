// Package report contains the pure logic of the reporting pipeline:
// building parameterized queries from a filter, classifying rows for
// highlighting, projecting a result table onto a chart and summarizing
// KPIs. Nothing here touches a database or a renderer.
package report

import (
	"fmt"
	"strings"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// Query is a parameterized SQL statement. Filter values are always
// bound as arguments, never interpolated into the SQL text.
type Query struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
}

const dateLayout = "2006-01-02"

// BuildQuery produces the statement for one report type over a filter.
func BuildQuery(t entity.ReportType, f entity.Filter) (Query, error) {
	if err := f.Validate(); err != nil {
		return Query{}, err
	}

	where, args := buildConditions(f)

	var sql string
	switch t {
	case entity.ReportAllSales:
		sql = "SELECT *, quantity * unit_price AS amount FROM sales" + where
	case entity.ReportByProduct:
		sql = "SELECT product_name, SUM(quantity) AS total_qty, " +
			"SUM(quantity * unit_price) AS total_amount FROM sales" + where +
			" GROUP BY product_name"
	case entity.ReportDailySummary:
		sql = "SELECT sale_date, SUM(quantity) AS total_qty, " +
			"SUM(quantity * unit_price) AS total_amount FROM sales" + where +
			" GROUP BY sale_date ORDER BY sale_date ASC"
	case entity.ReportByCategory:
		sql = "SELECT category, SUM(quantity) AS total_qty, " +
			"SUM(quantity * unit_price) AS total_amount FROM sales" + where +
			" GROUP BY category"
	default:
		return Query{}, fmt.Errorf("%w: %d", types.ErrUnknownReportType, int(t))
	}

	return Query{SQL: sql, Args: args}, nil
}

// BuildTrendQuery produces the month-by-month sales statement used for
// trend analysis, honoring the same filter conditions as the reports.
func BuildTrendQuery(f entity.Filter) (Query, error) {
	if err := f.Validate(); err != nil {
		return Query{}, err
	}

	where, args := buildConditions(f)
	sql := "SELECT strftime('%Y-%m', sale_date) AS month, " +
		"SUM(quantity * unit_price) AS amount FROM sales" + where +
		" GROUP BY month ORDER BY month"
	return Query{SQL: sql, Args: args}, nil
}

// buildConditions renders the WHERE clause for a filter. The date
// window is inclusive on both ends; product and category sets only
// constrain when non-empty.
func buildConditions(f entity.Filter) (string, []any) {
	var conditions []string
	var args []any

	switch {
	case f.HasDateRange():
		conditions = append(conditions, "sale_date BETWEEN ? AND ?")
		args = append(args, f.StartDate.Format(dateLayout), f.EndDate.Format(dateLayout))
	case !f.StartDate.IsZero():
		conditions = append(conditions, "sale_date >= ?")
		args = append(args, f.StartDate.Format(dateLayout))
	case !f.EndDate.IsZero():
		conditions = append(conditions, "sale_date <= ?")
		args = append(args, f.EndDate.Format(dateLayout))
	}

	if len(f.Products) > 0 {
		conditions = append(conditions, "product_name IN ("+placeholders(len(f.Products))+")")
		for _, p := range f.Products {
			args = append(args, p)
		}
	}

	if len(f.Categories) > 0 {
		conditions = append(conditions, "category IN ("+placeholders(len(f.Categories))+")")
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
