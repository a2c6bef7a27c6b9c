package repository

import (
	"context"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/report"
)

// SalesRepository defines the interface for the sales store.
type SalesRepository interface {
	// Report Operations
	ExecuteReport(ctx context.Context, query report.Query) (*entity.ResultTable, error)
	TrendByMonth(ctx context.Context, filter entity.Filter) ([]entity.MonthlySales, error)

	// Filter Bootstrap
	FilterOptions(ctx context.Context) (entity.FilterOptions, error)

	// Maintenance
	SeedDemo(ctx context.Context) (int, error)
	Close() error
}

// SalesRepositoryFactory opens a sales store at a path chosen at
// runtime (flags or config decide the database location).
type SalesRepositoryFactory func(dbPath string) (SalesRepository, error)
