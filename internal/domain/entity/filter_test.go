package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

func TestParseReportType_Tokens(t *testing.T) {
	t.Parallel()

	cases := map[string]ReportType{
		"":              ReportAllSales,
		"all-sales":     ReportAllSales,
		"all":           ReportAllSales,
		"by-product":    ReportByProduct,
		"product":       ReportByProduct,
		"daily-summary": ReportDailySummary,
		"daily":         ReportDailySummary,
		"by-category":   ReportByCategory,
		"category":      ReportByCategory,
		" By-Product ":  ReportByProduct,
	}

	for token, want := range cases {
		got, err := ParseReportType(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}
}

func TestParseReportType_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseReportType("weekly")
	require.ErrorIs(t, err, types.ErrUnknownReportType)
	assert.Contains(t, err.Error(), `"weekly"`)
}

func TestReportType_LabelAndToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "All Sales Data", ReportAllSales.Label())
	assert.Equal(t, "Sales by Product", ReportByProduct.Label())
	assert.Equal(t, "Daily Sales Summary", ReportDailySummary.Label())
	assert.Equal(t, "Sales by Category", ReportByCategory.Label())

	assert.Equal(t, "all-sales", ReportAllSales.Token())
	assert.Equal(t, "by-product", ReportByProduct.Token())
	assert.Equal(t, "daily-summary", ReportDailySummary.Token())
	assert.Equal(t, "by-category", ReportByCategory.Token())
}

func TestFilter_Validate(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	err := Filter{StartDate: start, EndDate: end}.Validate()
	require.ErrorIs(t, err, types.ErrInvalidDateRange)

	require.NoError(t, Filter{StartDate: end, EndDate: start}.Validate())
	require.NoError(t, Filter{StartDate: start}.Validate())
	require.NoError(t, Filter{}.Validate())
}

func TestFilter_HasDateRange(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, Filter{}.HasDateRange())
	assert.False(t, Filter{StartDate: day}.HasDateRange())
	assert.False(t, Filter{EndDate: day}.HasDateRange())
	assert.True(t, Filter{StartDate: day, EndDate: day}.HasDateRange())
}
