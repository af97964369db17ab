package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeExport(t *testing.T, path string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Preqin_Export"))
	require.NoError(t, f.SetSheetRow("Preqin_Export", "A1", &[]interface{}{"NAME", "STATUS", "DOMICILE"}))
	require.NoError(t, f.SetSheetRow("Preqin_Export", "A2", &[]interface{}{"Fund A", "Open Ended", "UK"}))
	require.NoError(t, f.SaveAs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_SingleInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.xlsx")
	writeExport(t, input)
	outDir := filepath.Join(dir, "curated")

	out, err := execute(t, "-o", outDir, "--prefix", "research", "--report-stdout", input)
	require.NoError(t, err)

	workbooks, _ := filepath.Glob(filepath.Join(outDir, "research_*.xlsx"))
	reports, _ := filepath.Glob(filepath.Join(outDir, "research_report_*.txt"))
	require.Len(t, workbooks, 1)
	require.Len(t, reports, 1)

	report, err := os.ReadFile(reports[0])
	require.NoError(t, err)
	assert.Equal(t, string(report), out, "stdout carries the same report")
	assert.Contains(t, out, "[Funds] Tab created with 1 rows")
	assert.Contains(t, out, "[Domicile] Domicile: 'UK': 'United Kingdom' => 1 replacements (rows 2)")

	f, err := excelize.OpenFile(workbooks[0])
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Funds", f.GetSheetName(0))
}

func TestRun_SkipsRepeatedContent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.xlsx")
	data := writeExport(t, first)
	second := filepath.Join(dir, "second.xlsx")
	require.NoError(t, os.WriteFile(second, data, 0644))
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "-o", outDir, first, second)
	require.NoError(t, err)

	workbooks, _ := filepath.Glob(filepath.Join(outDir, "*.xlsx"))
	require.Len(t, workbooks, 1)
	assert.Contains(t, filepath.Base(workbooks[0]), "funds_curated_first_")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"missing input", []string{filepath.Join(dir, "missing.xlsx")}},
		{"bad log format", []string{"--log-format", "xml", filepath.Join(dir, "missing.xlsx")}},
		{"missing config", []string{"--config", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "x.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestStem(t *testing.T) {
	assert.Equal(t, "export", stem("/data/in/export.xlsx"))
	assert.Equal(t, "export.v2", stem("export.v2.xlsx"))
}
