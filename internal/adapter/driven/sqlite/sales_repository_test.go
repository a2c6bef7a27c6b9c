package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/report"
	"github.com/rmarques/sales-dashboard-go/internal/domain/repository"
)

// newSeededRepo abre um banco de teste em disco e aplica o seed.
func newSeededRepo(t *testing.T) repository.SalesRepository {
	t.Helper()

	repo, err := NewSalesRepository(filepath.Join(t.TempDir(), "sales.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	inserted, err := repo.SeedDemo(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(demoSales), inserted)

	return repo
}

func TestSeedDemo_Idempotent(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	inserted, err := repo.SeedDemo(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestExecuteReport_AllSalesShape(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	q, err := report.BuildQuery(entity.ReportAllSales, entity.Filter{})
	require.NoError(t, err)

	table, err := repo.ExecuteReport(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"id", "product_name", "category", "quantity", "unit_price", "sale_date", "amount"},
		table.Columns)
	assert.Equal(t, len(demoSales), table.Len())

	// Driver values come back as plain Go types, never []byte.
	first := table.Rows[0]
	assert.IsType(t, "", first[1])
	amounts, err := table.NumericColumn("amount")
	require.NoError(t, err)
	assert.InDelta(t, 3750.0, amounts[0], 0.001)
}

func TestExecuteReport_DateWindow(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	filter := entity.Filter{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	q, err := report.BuildQuery(entity.ReportAllSales, filter)
	require.NoError(t, err)

	table, err := repo.ExecuteReport(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 7, table.Len())

	dates, err := table.StringColumn("sale_date")
	require.NoError(t, err)
	for _, d := range dates {
		assert.GreaterOrEqual(t, d, "2025-06-01")
		assert.LessOrEqual(t, d, "2025-06-30")
	}
}

func TestExecuteReport_ByProductWithCategoryFilter(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	q, err := report.BuildQuery(entity.ReportByProduct, entity.Filter{Categories: []string{"Accessories"}})
	require.NoError(t, err)

	table, err := repo.ExecuteReport(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, []string{"product_name", "total_qty", "total_amount"}, table.Columns)
	assert.Equal(t, 4, table.Len())

	products, err := table.StringColumn("product_name")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Docking Station", "Headphones", "Keyboard", "Mouse"}, products)
}

func TestExecuteReport_DailySummaryOrdered(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	q, err := report.BuildQuery(entity.ReportDailySummary, entity.Filter{})
	require.NoError(t, err)

	table, err := repo.ExecuteReport(context.Background(), q)
	require.NoError(t, err)

	dates, err := table.StringColumn("sale_date")
	require.NoError(t, err)
	require.NotEmpty(t, dates)
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
}

func TestTrendByMonth(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	trend, err := repo.TrendByMonth(context.Background(), entity.Filter{})
	require.NoError(t, err)
	require.Len(t, trend, 3)

	assert.Equal(t, "2025-05", trend[0].Month)
	assert.Equal(t, "2025-06", trend[1].Month)
	assert.Equal(t, "2025-07", trend[2].Month)
	assert.InDelta(t, 13270.8, trend[0].Amount, 0.001)
	assert.InDelta(t, 16047.1, trend[1].Amount, 0.001)
	assert.InDelta(t, 9890.5, trend[2].Amount, 0.001)
}

func TestTrendByMonth_Filtered(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	trend, err := repo.TrendByMonth(context.Background(), entity.Filter{Products: []string{"Laptop"}})
	require.NoError(t, err)
	require.Len(t, trend, 3)
	assert.InDelta(t, 3750.0+2500.0, trend[0].Amount, 0.001)
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	options, err := repo.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), options.MinDate)
	assert.Equal(t, time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC), options.MaxDate)
	assert.Equal(t,
		[]string{"Docking Station", "Headphones", "Keyboard", "Laptop", "Monitor", "Mouse", "Smartphone", "Tablet"},
		options.Products)
	assert.Equal(t, []string{"Accessories", "Electronics"}, options.Categories)
}

func TestFilterOptions_EmptyDatabase(t *testing.T) {
	t.Parallel()

	repo, err := NewSalesRepository(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	options, err := repo.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.True(t, options.MinDate.IsZero())
	assert.True(t, options.MaxDate.IsZero())
	assert.Empty(t, options.Products)
	assert.Empty(t, options.Categories)
}

func TestExecuteReport_EmptyResultKeepsColumns(t *testing.T) {
	t.Parallel()

	repo := newSeededRepo(t)

	q, err := report.BuildQuery(entity.ReportByProduct, entity.Filter{Products: []string{"Telescope"}})
	require.NoError(t, err)

	table, err := repo.ExecuteReport(context.Background(), q)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.Equal(t, []string{"product_name", "total_qty", "total_amount"}, table.Columns)
}
