package entity

// Report bundles everything derived from one report run: the result
// table, the row highlights shared by all renderers, the chart
// projection (nil when the report has nothing to plot) and the KPIs.
type Report struct {
	Type       ReportType       `json:"type"`
	Filter     Filter           `json:"filter"`
	Table      *ResultTable     `json:"table"`
	Highlights *HighlightResult `json:"highlights"`
	Chart      *ChartSpec       `json:"chart,omitempty"`
	KPIs       KPISummary       `json:"kpis"`
}
