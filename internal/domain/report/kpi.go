package report

import (
	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

// Summarize derives the headline KPIs from a result table. Missing
// columns are not an error: the summary records which indicators the
// table could actually support.
func Summarize(t *entity.ResultTable) (entity.KPISummary, error) {
	var s entity.KPISummary

	if col, err := t.AmountColumn(); err == nil {
		values, err := t.NumericColumn(col)
		if err != nil {
			return s, err
		}
		for _, v := range values {
			s.TotalAmount += v
		}
	}

	qtyCol := ""
	switch {
	case t.HasColumn("quantity"):
		qtyCol = "quantity"
	case t.HasColumn("total_qty"):
		qtyCol = "total_qty"
	}
	if qtyCol != "" {
		values, err := t.NumericColumn(qtyCol)
		if err != nil {
			return s, err
		}
		s.HasQuantity = true
		for _, v := range values {
			s.TotalQuantity += v
		}
	}

	if t.HasColumn("product_name") {
		s.HasProducts = true
		s.ProductCount = distinctCount(t, "product_name")
	}
	if t.HasColumn("category") {
		s.HasCategories = true
		s.CategoryCount = distinctCount(t, "category")
	}
	return s, nil
}

func distinctCount(t *entity.ResultTable, col string) int {
	values, err := t.StringColumn(col)
	if err != nil {
		return 0
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
