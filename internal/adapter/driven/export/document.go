package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
	"github.com/rmarques/sales-dashboard-go/internal/domain/report"
)

const (
	pageBreakY = 265.0
	tableWidth = 190.0
	rowHeight  = 7.0
)

// RenderDocument produz o PDF paginado: bloco de título, gráfico
// estático opcional e a tabela com grade, cabeçalho repetido a cada
// página e fundo por camada de destaque. Uma tabela vazia ainda gera
// um documento válido, só com o cabeçalho.
func (r *ExportRepositoryImpl) RenderDocument(rep *entity.Report, title string) ([]byte, error) {
	table := rep.Table

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Sales Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// Bloco de título
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr("Generated by Sales Dashboard (Go)"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if spec, ok := report.StaticChart(table); ok {
		if err := r.drawStaticChart(pdf, spec, table); err != nil {
			return nil, err
		}
	}

	if len(table.Columns) > 0 {
		drawReportTable(pdf, tr, rep)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing PDF document: %w", err)
	}
	return buf.Bytes(), nil
}

// drawStaticChart embute o gráfico via um arquivo de rascunho com nome
// exclusivo desta invocação, removido antes do retorno.
func (r *ExportRepositoryImpl) drawStaticChart(pdf *gofpdf.Fpdf, spec entity.ChartSpec, table *entity.ResultTable) error {
	png, err := renderChartPNG(spec, table)
	if err != nil {
		return fmt.Errorf("error generating chart image: %w", err)
	}

	scratch := filepath.Join(r.scratchDir, fmt.Sprintf("sales-chart-%s.png", uuid.NewString()))
	if err := os.WriteFile(scratch, png, 0600); err != nil {
		return fmt.Errorf("error writing chart scratch file: %w", err)
	}
	defer os.Remove(scratch)

	pdf.ImageOptions(scratch, 25, 0, 160, 80, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(6)
	return pdf.Error()
}

// drawReportTable desenha a tabela com grade e cabeçalho estilizado,
// repetindo o cabeçalho a cada quebra de página.
func drawReportTable(pdf *gofpdf.Fpdf, tr func(string) string, rep *entity.Report) {
	table := rep.Table
	colWidth := tableWidth / float64(len(table.Columns))

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(128, 128, 128)

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(79, 129, 189) // #4F81BD
		pdf.SetTextColor(245, 245, 245)
		for _, col := range table.Columns {
			pdf.CellFormat(colWidth, rowHeight, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	pdf.SetFont("Arial", "", 9)
	for i, row := range table.Rows {
		if pdf.GetY()+rowHeight > pageBreakY {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 9)
		}

		fill := false
		switch rep.Highlights.Tier(i) {
		case entity.TierTopN:
			pdf.SetFillColor(255, 215, 0) // #FFD700
			fill = true
		case entity.TierAlternateA:
			pdf.SetFillColor(220, 230, 241) // #DCE6F1
			fill = true
		}
		pdf.SetTextColor(50, 50, 50)
		for _, cell := range row {
			pdf.CellFormat(colWidth, rowHeight, tr(entity.FormatCell(cell)), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}
