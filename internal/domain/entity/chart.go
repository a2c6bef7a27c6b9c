package entity

import "encoding/json"

// ChartKind identifies the chart shape a report projects to.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartLine
	ChartPie
)

// String returns the lowercase chart kind name.
func (k ChartKind) String() string {
	switch k {
	case ChartLine:
		return "line"
	case ChartPie:
		return "pie"
	default:
		return "bar"
	}
}

// MarshalJSON serializes the kind by name rather than ordinal.
func (k ChartKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ChartSpec tells a renderer what to draw: the chart kind, which table
// columns feed the axes, and how to color and title the result. It
// never re-sorts data; rows keep the order the query produced.
type ChartSpec struct {
	Kind          ChartKind `json:"kind"`
	CategoryField string    `json:"category_field"`
	ValueField    string    `json:"value_field"`
	ColorField    string    `json:"color_field,omitempty"`
	Title         string    `json:"title"`
	Markers       bool      `json:"markers,omitempty"`
}
