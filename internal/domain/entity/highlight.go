package entity

import "encoding/json"

// HighlightTier classifies a row for rendering.
type HighlightTier int

const (
	// TierNone marks rows in tables too small to band.
	TierNone HighlightTier = iota
	// TierTopN marks rows whose amount is among the top values.
	TierTopN
	// TierAlternateA marks even rows (1-based) outside the top set.
	TierAlternateA
	// TierAlternateB marks odd rows (1-based) outside the top set.
	TierAlternateB
)

// String returns the tier name used in JSON exports and CSS classes.
func (t HighlightTier) String() string {
	switch t {
	case TierTopN:
		return "top"
	case TierAlternateA:
		return "band-a"
	case TierAlternateB:
		return "band-b"
	default:
		return "none"
	}
}

// MarshalJSON serializes the tier by name rather than ordinal.
func (t HighlightTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// HighlightResult assigns one tier to every row of a table, so the
// spreadsheet and document renderers style rows identically.
type HighlightResult struct {
	Tiers        []HighlightTier `json:"tiers"`
	AmountColumn string          `json:"amount_column"`
	TopAmounts   []float64       `json:"top_amounts"`
}

// Tier returns the tier of a row, or TierNone when out of range.
func (h *HighlightResult) Tier(row int) HighlightTier {
	if h == nil || row < 0 || row >= len(h.Tiers) {
		return TierNone
	}
	return h.Tiers[row]
}

// IsTopN reports whether a row belongs to the top amount set.
func (h *HighlightResult) IsTopN(row int) bool {
	return h.Tier(row) == TierTopN
}
