package entity

// KPISummary aggregates the headline indicators a report exposes.
// The Has* flags record whether the underlying column existed, so
// consumers can render "N/A" instead of zero.
type KPISummary struct {
	TotalAmount   float64 `json:"total_amount"`
	TotalQuantity float64 `json:"total_quantity"`
	ProductCount  int     `json:"product_count"`
	CategoryCount int     `json:"category_count"`
	HasQuantity   bool    `json:"-"`
	HasProducts   bool    `json:"-"`
	HasCategories bool    `json:"-"`
}

// MonthlySales represents the amount sold in one month, used for
// trend analysis.
type MonthlySales struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
