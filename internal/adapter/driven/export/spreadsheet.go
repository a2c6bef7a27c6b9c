package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

const sheetName = "Report"

// RenderSpreadsheet monta a pasta de trabalho: aba "Report" com
// cabeçalho em negrito, linhas na ordem da consulta, destaque dourado
// nas maiores vendas e um gráfico de colunas embutido.
func (r *ExportRepositoryImpl) RenderSpreadsheet(rep *entity.Report) ([]byte, error) {
	table := rep.Table

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("error naming report sheet: %w", err)
	}

	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("error locating header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("error writing header cell: %w", err)
		}
	}
	if len(table.Columns) > 0 {
		headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("error creating header style: %w", err)
		}
		lastHeader, _ := excelize.CoordinatesToCellName(len(table.Columns), 1)
		if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
			return nil, fmt.Errorf("error styling header row: %w", err)
		}
	}

	for rowIdx, row := range table.Rows {
		for colIdx, cell := range row {
			name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("error locating data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, name, cell); err != nil {
				return nil, fmt.Errorf("error writing data cell: %w", err)
			}
		}
	}

	if err := applyTopHighlights(f, rep); err != nil {
		return nil, err
	}
	if err := embedSalesChart(f, rep); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// applyTopHighlights pinta de dourado as linhas marcadas como TopN.
func applyTopHighlights(f *excelize.File, rep *entity.Report) error {
	table, highlights := rep.Table, rep.Highlights
	if highlights == nil || len(table.Columns) == 0 {
		return nil
	}

	goldStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFD700"}, Pattern: 1},
		Font: &excelize.Font{Color: "000000"},
	})
	if err != nil {
		return fmt.Errorf("error creating highlight style: %w", err)
	}

	for i := range table.Rows {
		if !highlights.IsTopN(i) {
			continue
		}
		first, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error locating highlight row: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(table.Columns), i+2)
		if err != nil {
			return fmt.Errorf("error locating highlight row: %w", err)
		}
		if err := f.SetCellStyle(sheetName, first, last, goldStyle); err != nil {
			return fmt.Errorf("error highlighting row %d: %w", i+1, err)
		}
	}
	return nil
}

// embedSalesChart insere o gráfico de colunas em H2. O eixo de
// categorias resolve por presença (category, senão product_name) e o
// de valores usa a coluna de valor resolvida; sem colunas compatíveis
// ou sem linhas, a planilha sai sem gráfico.
func embedSalesChart(f *excelize.File, rep *entity.Report) error {
	table := rep.Table
	if table.Len() == 0 {
		return nil
	}

	valueCol, err := table.AmountColumn()
	if err != nil {
		return nil
	}
	var categoryCol string
	switch {
	case table.HasColumn("category"):
		categoryCol = "category"
	case table.HasColumn("product_name"):
		categoryCol = "product_name"
	default:
		return nil
	}

	chart := excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Sales Amount",
			Categories: sheetRange(table.ColumnIndex(categoryCol), 2, table.Len()+1),
			Values:     sheetRange(table.ColumnIndex(valueCol), 2, table.Len()+1),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		}},
		Title: []excelize.RichTextRun{{Text: "Sales Chart"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Category/Product"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Amount"}}},
	}
	if err := f.AddChart(sheetName, "H2", &chart); err != nil {
		return fmt.Errorf("error embedding sales chart: %w", err)
	}
	return nil
}

// sheetRange monta uma referência absoluta de coluna, ex. Report!$C$2:$C$21.
func sheetRange(colIdx, firstRow, lastRow int) string {
	colName, _ := excelize.ColumnNumberToName(colIdx + 1)
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", sheetName, colName, firstRow, colName, lastRow)
}
