package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

// ReportType identifies one of the supported report shapes.
type ReportType int

const (
	ReportAllSales ReportType = iota
	ReportByProduct
	ReportDailySummary
	ReportByCategory
)

// ParseReportType converts a CLI/config token into a ReportType.
func ParseReportType(token string) (ReportType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "all-sales", "all":
		return ReportAllSales, nil
	case "by-product", "product":
		return ReportByProduct, nil
	case "daily-summary", "daily":
		return ReportDailySummary, nil
	case "by-category", "category":
		return ReportByCategory, nil
	default:
		return ReportAllSales, fmt.Errorf("%w: %q", types.ErrUnknownReportType, token)
	}
}

// Label returns the display title used in report headers.
func (t ReportType) Label() string {
	switch t {
	case ReportByProduct:
		return "Sales by Product"
	case ReportDailySummary:
		return "Daily Sales Summary"
	case ReportByCategory:
		return "Sales by Category"
	default:
		return "All Sales Data"
	}
}

// MarshalJSON renders the report type as its canonical token.
func (t ReportType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Token())
}

// Token returns the canonical CLI token for the report type.
func (t ReportType) Token() string {
	switch t {
	case ReportByProduct:
		return "by-product"
	case ReportDailySummary:
		return "daily-summary"
	case ReportByCategory:
		return "by-category"
	default:
		return "all-sales"
	}
}

// Filter narrows a report to a date window and to specific products or
// categories. Empty fields mean "no restriction".
type Filter struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Products   []string  `json:"products,omitempty"`
	Categories []string  `json:"categories,omitempty"`
}

// HasDateRange reports whether both ends of the date window are set.
func (f Filter) HasDateRange() bool {
	return !f.StartDate.IsZero() && !f.EndDate.IsZero()
}

// Validate checks that the date window is coherent.
func (f Filter) Validate() error {
	if f.HasDateRange() && f.EndDate.Before(f.StartDate) {
		return fmt.Errorf("%w: %s after %s",
			types.ErrInvalidDateRange,
			f.StartDate.Format("2006-01-02"),
			f.EndDate.Format("2006-01-02"))
	}
	return nil
}

// FilterOptions lists the values available for building a Filter,
// derived from the data actually present in the store.
type FilterOptions struct {
	MinDate    time.Time `json:"min_date"`
	MaxDate    time.Time `json:"max_date"`
	Products   []string  `json:"products"`
	Categories []string  `json:"categories"`
}
