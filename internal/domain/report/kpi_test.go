package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

func TestSummarize_DetailTable(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{
		Columns: []string{"product_name", "category", "quantity", "amount"},
		Rows: [][]any{
			{"Laptop", "Electronics", 2.0, 2500.0},
			{"Mouse", "Accessories", 10.0, 250.0},
			{"Laptop", "Electronics", 1.0, 1250.0},
		},
	}

	s, err := Summarize(table)
	require.NoError(t, err)

	assert.InDelta(t, 4000.0, s.TotalAmount, 0.001)
	assert.True(t, s.HasQuantity)
	assert.InDelta(t, 13.0, s.TotalQuantity, 0.001)
	assert.True(t, s.HasProducts)
	assert.Equal(t, 2, s.ProductCount)
	assert.True(t, s.HasCategories)
	assert.Equal(t, 2, s.CategoryCount)
}

func TestSummarize_AggregatedTable(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{
		Columns: []string{"product_name", "total_qty", "total_amount"},
		Rows: [][]any{
			{"Laptop", 10.0, 12500.0},
			{"Mouse", 35.0, 875.0},
		},
	}

	s, err := Summarize(table)
	require.NoError(t, err)

	assert.InDelta(t, 13375.0, s.TotalAmount, 0.001)
	assert.True(t, s.HasQuantity)
	assert.InDelta(t, 45.0, s.TotalQuantity, 0.001)
	assert.True(t, s.HasProducts)
	assert.Equal(t, 2, s.ProductCount)
	assert.False(t, s.HasCategories)
	assert.Zero(t, s.CategoryCount)
}

func TestSummarize_DailyTableHasNoDimensions(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{
		Columns: []string{"sale_date", "total_qty", "total_amount"},
		Rows:    [][]any{{"2025-06-01", 5.0, 1200.0}},
	}

	s, err := Summarize(table)
	require.NoError(t, err)

	assert.False(t, s.HasProducts)
	assert.False(t, s.HasCategories)
	assert.True(t, s.HasQuantity)
}

func TestSummarize_NoAmountColumn(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{
		Columns: []string{"product_name"},
		Rows:    [][]any{{"Laptop"}},
	}

	s, err := Summarize(table)
	require.NoError(t, err)
	assert.Zero(t, s.TotalAmount)
	assert.False(t, s.HasQuantity)
	assert.True(t, s.HasProducts)
}

func TestSummarize_EmptyTable(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{Columns: []string{"product_name", "amount"}}
	s, err := Summarize(table)
	require.NoError(t, err)
	assert.Zero(t, s.TotalAmount)
	assert.Equal(t, 0, s.ProductCount)
	assert.True(t, s.HasProducts)
}
