// Package parser reads fund export workbooks into tables.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// bounds is the 0-based bounding box of non-empty cells.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

// DataRange returns the range (e.g. "A1:S120") covering every non-empty cell
// of the sheet and the number of non-empty cells inside it. An empty sheet
// yields "" and 0.
func DataRange(f *excelize.File, sheetName string) (string, int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", 0, err
	}
	b, ok := findDataBounds(rows)
	if !ok {
		return "", 0, nil
	}
	startCell, _ := excelize.CoordinatesToCellName(b.minCol+1, b.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.maxCol+1, b.maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell), countNonEmptyCells(rows, b), nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (bounds, bool) {
	b := bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, b bounds) int {
	count := 0
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := b.minCol; colIdx <= b.maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
