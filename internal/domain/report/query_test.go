package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildQuery_AllSales(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(entity.ReportAllSales, entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT *, quantity * unit_price AS amount FROM sales", q.SQL)
	assert.Empty(t, q.Args)
}

func TestBuildQuery_ByProduct(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(entity.ReportByProduct, entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT product_name, SUM(quantity) AS total_qty, SUM(quantity * unit_price) AS total_amount FROM sales GROUP BY product_name",
		q.SQL)
}

func TestBuildQuery_DailySummaryOrdersByDate(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(entity.ReportDailySummary, entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT sale_date, SUM(quantity) AS total_qty, SUM(quantity * unit_price) AS total_amount FROM sales GROUP BY sale_date ORDER BY sale_date ASC",
		q.SQL)
}

func TestBuildQuery_ByCategory(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(entity.ReportByCategory, entity.Filter{})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT category, SUM(quantity) AS total_qty, SUM(quantity * unit_price) AS total_amount FROM sales GROUP BY category",
		q.SQL)
}

func TestBuildQuery_FullFilter(t *testing.T) {
	t.Parallel()

	filter := entity.Filter{
		StartDate:  date("2025-06-01"),
		EndDate:    date("2025-06-30"),
		Products:   []string{"Laptop", "Mouse"},
		Categories: []string{"Electronics"},
	}

	q, err := BuildQuery(entity.ReportAllSales, filter)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT *, quantity * unit_price AS amount FROM sales WHERE sale_date BETWEEN ? AND ? AND product_name IN (?, ?) AND category IN (?)",
		q.SQL)
	assert.Equal(t, []any{"2025-06-01", "2025-06-30", "Laptop", "Mouse", "Electronics"}, q.Args)
}

func TestBuildQuery_OpenEndedDates(t *testing.T) {
	t.Parallel()

	q, err := BuildQuery(entity.ReportAllSales, entity.Filter{StartDate: date("2025-06-01")})
	require.NoError(t, err)
	assert.Contains(t, q.SQL, "WHERE sale_date >= ?")
	assert.Equal(t, []any{"2025-06-01"}, q.Args)

	q, err = BuildQuery(entity.ReportAllSales, entity.Filter{EndDate: date("2025-06-30")})
	require.NoError(t, err)
	assert.Contains(t, q.SQL, "WHERE sale_date <= ?")
	assert.Equal(t, []any{"2025-06-30"}, q.Args)
}

func TestBuildQuery_NeverInlinesValues(t *testing.T) {
	t.Parallel()

	filter := entity.Filter{
		Products: []string{"Robert'); DROP TABLE sales;--"},
	}

	q, err := BuildQuery(entity.ReportByProduct, filter)
	require.NoError(t, err)
	assert.NotContains(t, q.SQL, "DROP TABLE")
	assert.Equal(t, 1, strings.Count(q.SQL, "?"))
	assert.Equal(t, []any{"Robert'); DROP TABLE sales;--"}, q.Args)
}

func TestBuildQuery_InvalidRange(t *testing.T) {
	t.Parallel()

	filter := entity.Filter{StartDate: date("2025-07-01"), EndDate: date("2025-06-01")}
	_, err := BuildQuery(entity.ReportAllSales, filter)
	require.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestBuildQuery_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := BuildQuery(entity.ReportType(99), entity.Filter{})
	require.ErrorIs(t, err, types.ErrUnknownReportType)
}

func TestBuildTrendQuery(t *testing.T) {
	t.Parallel()

	q, err := BuildTrendQuery(entity.Filter{Categories: []string{"Accessories"}})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT strftime('%Y-%m', sale_date) AS month, SUM(quantity * unit_price) AS amount FROM sales WHERE category IN (?) GROUP BY month ORDER BY month",
		q.SQL)
	assert.Equal(t, []any{"Accessories"}, q.Args)
}
