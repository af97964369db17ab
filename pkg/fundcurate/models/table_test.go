package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFundTable() *Table {
	t := NewTable("Funds", "Fund", "Status")
	t.Append(
		Row{"Fund": "A", "Status": "Open Ended"},
		Row{"Fund": "B", "Status": ""},
		Row{"Fund": "C", "Status": "Closed"},
	)
	return t
}

func TestTable_Append(t *testing.T) {
	tbl := newFundTable()
	start := tbl.Append(Row{"Fund": "D"}, Row{"Fund": "E"})

	assert.Equal(t, 3, start)
	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, "E", tbl.Value(4, "Fund"))
	assert.Equal(t, "", tbl.Value(4, "Status"))
	assert.Equal(t, "", tbl.Value(9, "Fund"))
}

func TestTable_SetColumn(t *testing.T) {
	tbl := newFundTable()
	tbl.SetColumn("Role", "Auditor")
	tbl.SetColumn("Fund", "X")

	assert.Equal(t, []string{"Fund", "Status", "Role"}, tbl.Columns)
	assert.Equal(t, []string{"Auditor", "Auditor", "Auditor"}, tbl.Column("Role"))
	assert.Equal(t, []string{"X", "X", "X"}, tbl.Column("Fund"))
}

func TestTable_Reorder(t *testing.T) {
	tbl := newFundTable()
	tbl.Reorder("Status", "Note", "Fund")

	assert.Equal(t, []string{"Status", "Note", "Fund"}, tbl.Columns)
	for _, row := range tbl.Rows {
		assert.Len(t, row, 3)
		assert.Contains(t, row, "Note")
	}

	tbl.Reorder("Fund")
	_, ok := tbl.Rows[0]["Status"]
	assert.False(t, ok, "unlisted columns are removed from rows")
}

func TestTable_Filter(t *testing.T) {
	tests := []struct {
		name    string
		keep    func(Row) bool
		dropped []int
		funds   []string
	}{
		{
			name:    "keep all",
			keep:    func(Row) bool { return true },
			dropped: nil,
			funds:   []string{"A", "B", "C"},
		},
		{
			name:    "drop blank status",
			keep:    func(r Row) bool { return r["Status"] != "" },
			dropped: []int{1},
			funds:   []string{"A", "C"},
		},
		{
			name:    "drop all",
			keep:    func(Row) bool { return false },
			dropped: []int{0, 1, 2},
			funds:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newFundTable()
			dropped := tbl.Filter(tt.keep)
			assert.Equal(t, tt.dropped, dropped)
			assert.Equal(t, tt.funds, tbl.Column("Fund"))
		})
	}
}

func TestTable_Clone(t *testing.T) {
	tbl := newFundTable()
	clone, err := tbl.Clone()
	require.NoError(t, err)

	clone.Rows[0]["Status"] = ""
	clone.Columns[0] = "Name"
	clone.Append(Row{"Fund": "Z"})

	assert.Equal(t, "Open Ended", tbl.Value(0, "Status"))
	assert.Equal(t, "Fund", tbl.Columns[0])
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, tbl.Name, clone.Name)
}

func TestWorkbook(t *testing.T) {
	wb := NewWorkbook("export.xlsx")
	assert.True(t, wb.Empty())

	assert.False(t, wb.Put(NewTable(SheetRoles)))
	assert.False(t, wb.Put(NewTable(SheetFunds)))
	assert.False(t, wb.Put(NewTable(SheetDomicile)))
	assert.True(t, wb.Put(NewTable(SheetFunds)), "second Funds table replaces the first")

	assert.False(t, wb.Empty())
	assert.True(t, wb.HasTable(SheetDomicile))
	assert.False(t, wb.HasTable(SheetFees))
	assert.Equal(t, []string{SheetFunds, SheetDomicile, SheetRoles}, wb.Names())

	_, ok := wb.Table(SheetEvents)
	assert.False(t, ok)
}

func TestSheetNames_FitExcelLimit(t *testing.T) {
	for _, name := range SheetOrder {
		assert.LessOrEqual(t, len(name), 31, name)
	}
	assert.Len(t, SheetOrder, 11)
}
