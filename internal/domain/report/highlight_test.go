package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

func amountTable(amounts ...float64) *entity.ResultTable {
	rows := make([][]any, len(amounts))
	for i, a := range amounts {
		rows[i] = []any{a}
	}
	return &entity.ResultTable{Columns: []string{"total_amount"}, Rows: rows}
}

func TestComputeHighlights_TopThreeByValue(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable(80, 10, 70, 20, 60, 30))
	require.NoError(t, err)

	assert.Equal(t, "total_amount", h.AmountColumn)
	assert.Equal(t, []float64{80, 70, 60}, h.TopAmounts)

	// Rows 0, 2 and 4 carry the three largest amounts regardless of
	// their position in the table.
	assert.Equal(t, entity.TierTopN, h.Tier(0))
	assert.Equal(t, entity.TierTopN, h.Tier(2))
	assert.Equal(t, entity.TierTopN, h.Tier(4))

	// The rest alternate by 1-based position: even rows band A.
	assert.Equal(t, entity.TierAlternateA, h.Tier(1)) // row 2
	assert.Equal(t, entity.TierAlternateA, h.Tier(3)) // row 4
	assert.Equal(t, entity.TierAlternateA, h.Tier(5)) // row 6
}

func TestComputeHighlights_BoundaryTiesAllIncluded(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable(100, 90, 80, 80, 10))
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 90, 80}, h.TopAmounts)
	assert.Equal(t, entity.TierTopN, h.Tier(0))
	assert.Equal(t, entity.TierTopN, h.Tier(1))
	assert.Equal(t, entity.TierTopN, h.Tier(2))
	assert.Equal(t, entity.TierTopN, h.Tier(3))
	assert.Equal(t, entity.TierAlternateB, h.Tier(4)) // row 5, odd
}

func TestComputeHighlights_RepeatedTopValue(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable(10, 10, 10, 5, 1))
	require.NoError(t, err)

	assert.Equal(t, []float64{10}, h.TopAmounts)
	assert.Equal(t, entity.TierTopN, h.Tier(0))
	assert.Equal(t, entity.TierTopN, h.Tier(1))
	assert.Equal(t, entity.TierTopN, h.Tier(2))
	assert.Equal(t, entity.TierAlternateA, h.Tier(3)) // row 4
	assert.Equal(t, entity.TierAlternateB, h.Tier(4)) // row 5
}

func TestComputeHighlights_AllEqualAmounts(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable(10, 10, 10, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, []float64{10}, h.TopAmounts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, entity.TierTopN, h.Tier(i), "row %d", i)
	}
}

func TestComputeHighlights_BandParity(t *testing.T) {
	t.Parallel()

	// Top three are the last three rows; the first five alternate
	// starting with band B on the first row.
	h, err := ComputeHighlights(amountTable(1, 2, 3, 4, 5, 100, 200, 300))
	require.NoError(t, err)

	assert.Equal(t, entity.TierAlternateB, h.Tier(0))
	assert.Equal(t, entity.TierAlternateA, h.Tier(1))
	assert.Equal(t, entity.TierAlternateB, h.Tier(2))
	assert.Equal(t, entity.TierAlternateA, h.Tier(3))
	assert.Equal(t, entity.TierAlternateB, h.Tier(4))
	assert.Equal(t, entity.TierTopN, h.Tier(5))
	assert.Equal(t, entity.TierTopN, h.Tier(6))
	assert.Equal(t, entity.TierTopN, h.Tier(7))
}

func TestComputeHighlights_FewerRowsThanTop(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable(5, 3))
	require.NoError(t, err)
	assert.Equal(t, entity.TierTopN, h.Tier(0))
	assert.Equal(t, entity.TierTopN, h.Tier(1))
}

func TestComputeHighlights_EmptyTable(t *testing.T) {
	t.Parallel()

	h, err := ComputeHighlights(amountTable())
	require.NoError(t, err)
	assert.Empty(t, h.Tiers)
	assert.Empty(t, h.TopAmounts)
}

func TestComputeHighlights_AmountFallback(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{
		Columns: []string{"product_name", "amount"},
		Rows:    [][]any{{"Laptop", 2500.0}},
	}
	h, err := ComputeHighlights(table)
	require.NoError(t, err)
	assert.Equal(t, "amount", h.AmountColumn)
}

func TestComputeHighlights_MissingAmountColumn(t *testing.T) {
	t.Parallel()

	table := &entity.ResultTable{Columns: []string{"product_name"}}
	_, err := ComputeHighlights(table)
	require.ErrorIs(t, err, types.ErrAmountColumnMissing)
}
