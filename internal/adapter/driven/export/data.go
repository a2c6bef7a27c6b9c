package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/rmarques/sales-dashboard-go/internal/domain/entity"
)

// RenderCSV escreve a tabela como CSV: cabeçalho mais uma linha por registro.
func (r *ExportRepositoryImpl) RenderCSV(table *entity.ResultTable) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = entity.FormatCell(cell)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderJSON serializa o relatório completo: tabela, destaques e KPIs.
func (r *ExportRepositoryImpl) RenderJSON(rep *entity.Report) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rep); err != nil {
		return nil, fmt.Errorf("error encoding JSON data: %w", err)
	}
	return buf.Bytes(), nil
}
