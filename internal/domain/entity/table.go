package entity

import (
	"fmt"
	"strconv"

	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// ResultTable holds a query result as an ordered set of named columns
// plus rows of cells. Column order is the order the query produced.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewResultTable builds a table, checking that every row has one cell
// per column.
func NewResultTable(columns []string, rows [][]any) (*ResultTable, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(columns))
		}
	}
	return &ResultTable{Columns: columns, Rows: rows}, nil
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a named column, or -1.
func (t *ResultTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table carries a named column.
func (t *ResultTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AmountColumn resolves which column carries the money value of each
// row: aggregated results use total_amount, detail results use amount.
func (t *ResultTable) AmountColumn() (string, error) {
	if t.HasColumn("total_amount") {
		return "total_amount", nil
	}
	if t.HasColumn("amount") {
		return "amount", nil
	}
	return "", fmt.Errorf("%w: columns %v", types.ErrAmountColumnMissing, t.Columns)
}

// NumericColumn extracts a named column as float64 values.
func (t *ResultTable) NumericColumn(name string) ([]float64, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrColumnMissing, name)
	}
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, ok := toFloat(row[idx])
		if !ok {
			return nil, fmt.Errorf("%w: %s row %d (%T)", types.ErrColumnNotNumeric, name, i, row[idx])
		}
		values[i] = v
	}
	return values, nil
}

// StringColumn extracts a named column rendered as strings.
func (t *ResultTable) StringColumn(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrColumnMissing, name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = FormatCell(row[idx])
	}
	return values, nil
}

// FormatCell renders a single cell for display or export.
func FormatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case []byte:
		return string(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", c)
	}
}

func toFloat(v any) (float64, bool) {
	switch c := v.(type) {
	case float64:
		return c, true
	case float32:
		return float64(c), true
	case int:
		return float64(c), true
	case int32:
		return float64(c), true
	case int64:
		return float64(c), true
	case []byte:
		f, err := strconv.ParseFloat(string(c), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(c, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
