package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	// scratchDir recebe a imagem temporária de gráfico usada pelo PDF.
	scratchDir string
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{scratchDir: os.TempDir()}
}

// --- Funções de Exportação em Arquivo ---

func (r *ExportRepositoryImpl) ExportToXLSX(rep *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	data, err := r.RenderSpreadsheet(rep)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(rep *entity.Report, filename, outputDir, title string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	data, err := r.RenderDocument(rep, title)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToCSV(rep *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	data, err := r.RenderCSV(rep.Table)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(rep *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	data, err := r.RenderJSON(rep)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing JSON file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToHTML(rep *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	data, err := r.RenderChartPage(rep)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
