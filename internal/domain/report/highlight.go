package report

import (
	"sort"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

// topN is how many leading amounts get the gold treatment.
const topN = 3

// ComputeHighlights classifies every row of a table once, so the
// spreadsheet and document renderers agree on styling. Rows whose
// amount matches one of the top three amounts are TierTopN; ties on
// the boundary value are all included. Remaining rows alternate by
// 1-based position: even rows TierAlternateA, odd rows TierAlternateB.
func ComputeHighlights(t *entity.ResultTable) (*entity.HighlightResult, error) {
	col, err := t.AmountColumn()
	if err != nil {
		return nil, err
	}
	values, err := t.NumericColumn(col)
	if err != nil {
		return nil, err
	}

	top := topAmountSet(values, topN)

	tiers := make([]entity.HighlightTier, len(values))
	for i, v := range values {
		switch {
		case top[v]:
			tiers[i] = entity.TierTopN
		case (i+1)%2 == 0:
			tiers[i] = entity.TierAlternateA
		default:
			tiers[i] = entity.TierAlternateB
		}
	}

	amounts := make([]float64, 0, len(top))
	for v := range top {
		amounts = append(amounts, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(amounts)))

	return &entity.HighlightResult{
		Tiers:        tiers,
		AmountColumn: col,
		TopAmounts:   amounts,
	}, nil
}

// topAmountSet collects the distinct values among the n largest
// amounts. Membership is by value, which is what lets ties share the
// highlight.
func topAmountSet(values []float64, n int) map[float64]bool {
	sorted := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	set := make(map[float64]bool, len(sorted))
	for _, v := range sorted {
		set[v] = true
	}
	return set
}
