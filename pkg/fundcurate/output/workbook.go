// Package output writes curated workbooks and change reports to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
	"github.com/xuri/excelize/v2"
)

// timestampLayout gives output file names minute granularity.
const timestampLayout = "20060102_1504"

// FileNames returns the workbook and report file names for a run started at now.
func FileNames(prefix string, now time.Time) (workbook, reportFile string) {
	stamp := now.Format(timestampLayout)
	return fmt.Sprintf("%s_%s.xlsx", prefix, stamp), fmt.Sprintf("%s_report_%s.txt", prefix, stamp)
}

// WriteWorkbook renders wb and saves it to path.
func WriteWorkbook(wb *models.Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := Render(f, wb); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Render writes every table of wb into f in output sheet order. The scratch
// sheet a new file starts with is removed once a real tab exists; with no
// tabs it stays as the placeholder.
func Render(f *excelize.File, wb *models.Workbook) error {
	scratch := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	names := wb.Names()
	for _, name := range names {
		t, _ := wb.Table(name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeTable(f, name, t, headerStyle); err != nil {
			return fmt.Errorf("write sheet %q: %w", name, err)
		}
		autofit(f, name, t)
	}

	if len(names) > 0 && scratch != "" && !wb.HasTable(scratch) {
		if err := f.DeleteSheet(scratch); err != nil {
			return fmt.Errorf("remove placeholder sheet: %w", err)
		}
		f.SetActiveSheet(0)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, t *models.Table, headerStyle int) error {
	if len(t.Columns) == 0 {
		return nil
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, row := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			values[j] = parseValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, report.DisplayRow(i))
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// autofit sizes every column to its longest value. Widths are cosmetic, so
// failures are ignored.
func autofit(f *excelize.File, sheet string, t *models.Table) {
	for j, c := range t.Columns {
		longest := displayLength(c)
		for _, row := range t.Rows {
			if n := displayLength(row[c]); n > longest {
				longest = n
			}
		}
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(sheet, col, col, columnWidth(longest))
	}
}

// WriteReport writes the rendered report log to path.
func WriteReport(log *report.Log, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if _, err := log.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return file.Close()
}
