package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/report"
	"github.com/rmarques/sales-dashboard-go/internal/domain/repository"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sales (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	product_name TEXT NOT NULL,
	category TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	unit_price REAL NOT NULL,
	sale_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date);
`

// SalesRepositoryImpl implementa o SalesRepository sobre SQLite.
type SalesRepositoryImpl struct {
	db *sql.DB
}

// NewSalesRepository abre (ou cria) o banco de vendas no caminho informado.
func NewSalesRepository(dbPath string) (repository.SalesRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure sales schema: %w", err)
	}
	return &SalesRepositoryImpl{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SalesRepositoryImpl) Close() error {
	return r.db.Close()
}

// ExecuteReport runs a built query and captures whatever shape it
// returns, keeping column order.
func (r *SalesRepositoryImpl) ExecuteReport(ctx context.Context, query report.Query) (*entity.ResultTable, error) {
	rows, err := r.db.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute report query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var result [][]any
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		row := make([]any, len(columns))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return entity.NewResultTable(columns, result)
}

// TrendByMonth aggregates sales per calendar month under the same
// filter conditions the reports use.
func (r *SalesRepositoryImpl) TrendByMonth(ctx context.Context, filter entity.Filter) ([]entity.MonthlySales, error) {
	query, err := report.BuildTrendQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute trend query: %w", err)
	}
	defer rows.Close()

	var trend []entity.MonthlySales
	for rows.Next() {
		var m entity.MonthlySales
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		trend = append(trend, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trend rows: %w", err)
	}
	return trend, nil
}

// FilterOptions derives the selectable filter values from the data
// actually stored.
func (r *SalesRepositoryImpl) FilterOptions(ctx context.Context) (entity.FilterOptions, error) {
	var options entity.FilterOptions

	var minDate, maxDate sql.NullString
	row := r.db.QueryRowContext(ctx, "SELECT MIN(sale_date), MAX(sale_date) FROM sales")
	if err := row.Scan(&minDate, &maxDate); err != nil {
		return options, fmt.Errorf("failed to read date bounds: %w", err)
	}
	if minDate.Valid {
		if t, err := time.Parse("2006-01-02", minDate.String); err == nil {
			options.MinDate = t
		}
	}
	if maxDate.Valid {
		if t, err := time.Parse("2006-01-02", maxDate.String); err == nil {
			options.MaxDate = t
		}
	}

	products, err := r.distinctValues(ctx, "SELECT DISTINCT product_name FROM sales ORDER BY product_name")
	if err != nil {
		return options, err
	}
	options.Products = products

	categories, err := r.distinctValues(ctx, "SELECT DISTINCT category FROM sales ORDER BY category")
	if err != nil {
		return options, err
	}
	options.Categories = categories

	return options, nil
}

func (r *SalesRepositoryImpl) distinctValues(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distinct values: %w", err)
	}
	return values, nil
}

type demoSale struct {
	product  string
	category string
	quantity int
	price    float64
	date     string
}

var demoSales = []demoSale{
	{"Laptop", "Electronics", 3, 1250.00, "2025-05-03"},
	{"Smartphone", "Electronics", 5, 780.00, "2025-05-05"},
	{"Headphones", "Accessories", 10, 95.50, "2025-05-09"},
	{"Monitor", "Electronics", 4, 310.00, "2025-05-14"},
	{"Keyboard", "Accessories", 12, 45.90, "2025-05-18"},
	{"Laptop", "Electronics", 2, 1250.00, "2025-05-23"},
	{"Mouse", "Accessories", 15, 25.00, "2025-05-27"},
	{"Tablet", "Electronics", 6, 430.00, "2025-06-02"},
	{"Smartphone", "Electronics", 7, 780.00, "2025-06-06"},
	{"Headphones", "Accessories", 8, 95.50, "2025-06-11"},
	{"Docking Station", "Accessories", 5, 180.00, "2025-06-15"},
	{"Laptop", "Electronics", 4, 1250.00, "2025-06-19"},
	{"Monitor", "Electronics", 3, 310.00, "2025-06-24"},
	{"Keyboard", "Accessories", 9, 45.90, "2025-06-28"},
	{"Tablet", "Electronics", 2, 430.00, "2025-07-01"},
	{"Smartphone", "Electronics", 6, 780.00, "2025-07-08"},
	{"Mouse", "Accessories", 20, 25.00, "2025-07-12"},
	{"Laptop", "Electronics", 1, 1250.00, "2025-07-17"},
	{"Headphones", "Accessories", 11, 95.50, "2025-07-22"},
	{"Monitor", "Electronics", 5, 310.00, "2025-07-29"},
}

// SeedDemo inserts the demo dataset once, when the table is empty.
// Returns how many rows were inserted.
func (r *SalesRepositoryImpl) SeedDemo(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sales").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO sales (product_name, category, quantity, unit_price, sale_date) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range demoSales {
		if _, err := stmt.ExecContext(ctx, s.product, s.category, s.quantity, s.price, s.date); err != nil {
			return 0, fmt.Errorf("failed to insert demo sale: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return len(demoSales), nil
}

// normalizeValue converts driver types to plain Go values, so the rest
// of the pipeline never sees raw []byte cells.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
