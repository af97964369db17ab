package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet into a table. The first non-empty row is the
// header; every following row with at least one value becomes a record.
// Cells keep the text excelize renders for them.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return TableFromRows(sheetName, rows), nil
}

// TableFromRows builds a table from raw rows as returned by GetRows.
func TableFromRows(sheetName string, rows [][]string) *models.Table {
	b, ok := findDataBounds(rows)
	if !ok {
		return models.NewTable(sheetName)
	}

	columns := headerColumns(rows[b.minRow], b.maxCol)
	t := models.NewTable(sheetName, columns...)
	for rowIdx := b.minRow + 1; rowIdx <= b.maxRow; rowIdx++ {
		row := rows[rowIdx]
		record := make(models.Row, len(columns))
		hasData := false
		for colIdx, name := range columns {
			value := ""
			if colIdx < len(row) {
				value = row[colIdx]
			}
			if value != "" {
				hasData = true
			}
			record[name] = value
		}
		if hasData {
			t.Append(record)
		}
	}
	return t
}

// headerColumns names the columns up to maxCol. Blank headers become
// "Unnamed: N" and repeated names get a ".N" suffix so every column stays
// addressable.
func headerColumns(header []string, maxCol int) []string {
	columns := make([]string, maxCol+1)
	seen := make(map[string]int, len(columns))
	for colIdx := range columns {
		name := ""
		if colIdx < len(header) {
			name = strings.TrimSpace(header[colIdx])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		columns[colIdx] = name
	}
	return columns
}
