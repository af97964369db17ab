package fundcurate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/parser"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/transform"
)

// Result is the outcome of one curation run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string
	// Workbook holds the curated tabs.
	Workbook *models.Workbook
	// Report is the audit trail, in the order builders ran.
	Report *report.Log
	// Sheets lists the source sheets that were curated.
	Sheets []string
	// Sources holds each curated sheet as read, before sentinel cleanup,
	// keyed by sheet name.
	Sources map[string]*models.Table
}

// Curate curates the workbook at path.
func Curate(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return CurateFile(f, filepath.Base(path), opts)
}

// CurateReader curates a workbook read from r. bookName is used in logs and
// the result.
func CurateReader(r io.Reader, bookName string, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return CurateFile(f, bookName, opts)
}

// CurateFile curates an open workbook. Each allow-listed sheet present in f
// is cleaned of sentinel values and run through every tab builder; a later
// sheet replaces the tabs built from an earlier one. Sheets not on the
// allow-list are ignored.
func CurateFile(f *excelize.File, bookName string, opts Options) (*Result, error) {
	res := &Result{
		RunID:    uuid.NewString(),
		Workbook: models.NewWorkbook(bookName),
		Report:   report.New(),
		Sources:  make(map[string]*models.Table),
	}
	logger := opts.logger().With("run_id", res.RunID, "book", bookName)

	for _, v := range transform.Vocabularies() {
		for _, d := range v.Conflicts() {
			logger.Warn("vocabulary key defined twice; last value wins",
				"vocabulary", v.Name(), "key", d.Key, "previous", d.Previous, "value", d.Value)
		}
	}

	present := f.GetSheetList()
	allowed := opts.sheets()
	for _, name := range present {
		if !slices.Contains(allowed, name) {
			logger.Debug("ignoring sheet not on allow-list", "sheet", name)
		}
	}

	for _, name := range allowed {
		if !slices.Contains(present, name) {
			continue
		}
		if err := curateSheet(f, name, res, opts, logger); err != nil {
			return nil, err
		}
		res.Sheets = append(res.Sheets, name)
	}

	if len(res.Sheets) == 0 {
		res.Report.Notef("", "%v (looked for %v); output contains the placeholder sheet only", ErrNoSheets, allowed)
		logger.Warn(ErrNoSheets.Error(), "allowed", allowed, "present", present)
	}
	return res, nil
}

func curateSheet(f *excelize.File, name string, res *Result, opts Options, logger *slog.Logger) error {
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		if ref, cells, err := parser.DataRange(f, name); err == nil {
			logger.Debug("source sheet data range", "sheet", name, "range", ref, "cells", cells)
		}
	}

	src, err := parser.ReadTable(f, name)
	if err != nil {
		return NewCurationError(name, "read", err)
	}
	clean, err := src.Clone()
	if err != nil {
		return NewCurationError(name, "clone", err)
	}
	res.Sources[name] = src
	cleared := ClearSentinels(clean, opts.sentinels(), res.Report)
	logger.Info("curating sheet", "sheet", name, "rows", clean.Len(), "columns", len(clean.Columns), "cleared", cleared)

	for _, b := range transform.Builders() {
		t := b.Build(clean, res.Report)
		if t == nil {
			logger.Warn("tab not built", "sheet", name, "tab", b.Tab)
			continue
		}
		if res.Workbook.Put(t) {
			logger.Warn("tab replaced by later sheet", "sheet", name, "tab", t.Name)
		}
		logger.Debug("tab built", "sheet", name, "tab", t.Name, "rows", t.Len())
	}
	return nil
}

// ClearSentinels blanks every cell whose value is one of sentinels and
// records each cleared cell. It returns the number of cells cleared.
func ClearSentinels(t *models.Table, sentinels []string, log *report.Log) int {
	cleared := 0
	for i, row := range t.Rows {
		for _, col := range t.Columns {
			value := row[col]
			if value == "" || !slices.Contains(sentinels, value) {
				continue
			}
			row[col] = ""
			log.Cleared(t.Name, col, value, report.DisplayRow(i))
			cleared++
		}
	}
	return cleared
}
