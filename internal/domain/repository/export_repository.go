package repository

import (
	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	// Render* produce the artifact bytes without touching disk, for
	// HTTP download handlers and tests.
	RenderSpreadsheet(report *entity.Report) ([]byte, error)
	RenderDocument(report *entity.Report, title string) ([]byte, error)
	RenderChartPage(report *entity.Report) ([]byte, error)
	RenderCSV(table *entity.ResultTable) ([]byte, error)
	RenderJSON(report *entity.Report) ([]byte, error)

	// Export* write a timestamped file under outputDir and return its
	// path.
	ExportToXLSX(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.Report, filename string, outputDir string, title string) (string, error)
	ExportToCSV(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToHTML(report *entity.Report, filename string, outputDir string) (string, error)
}
