package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayRow(t *testing.T) {
	assert.Equal(t, 2, DisplayRow(0), "first body row sits under the header")
	assert.Equal(t, 11, DisplayRow(9))
	assert.Equal(t, []int{2, 4, 7}, DisplayRows([]int{0, 2, 5}))
	assert.Nil(t, DisplayRows(nil))
}

func TestFormatRows(t *testing.T) {
	tests := []struct {
		rows     []int
		expected string
	}{
		{nil, "(rows )"},
		{[]int{5}, "(rows 5)"},
		{[]int{2, 3}, "(rows 2, 3)"},
		{[]int{2, 3, 4, 5, 6}, "(rows 2, 3, 4, 5, 6)"},
		{[]int{2, 3, 4, 5, 6, 7}, "(rows 2, 3, 4, 5, 6, ...)"},
	}

	for _, tt := range tests {
		if got := FormatRows(tt.rows); got != tt.expected {
			t.Errorf("FormatRows(%v) = %q, expected %q", tt.rows, got, tt.expected)
		}
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "tab created",
			event:    Event{Kind: KindCreated, Tab: "Funds", Count: 12},
			expected: "[Funds] Tab created with 12 rows",
		},
		{
			name:     "column created",
			event:    Event{Kind: KindCreated, Tab: "Funds", Column: "Open/Closed", Count: 3},
			expected: "[Funds] Column 'Open/Closed' created (3 rows)",
		},
		{
			name: "substitution",
			event: Event{Kind: KindSubstituted, Tab: "Funds", Column: "Fund Status",
				Original: "Open Ended", Replacement: "Open ended", Count: 7, Rows: []int{2, 3, 4, 5, 6, 8, 9}},
			expected: "[Funds] Fund Status: 'Open Ended': 'Open ended' => 7 replacements (rows 2, 3, 4, 5, 6, ...)",
		},
		{
			name:     "deletion",
			event:    Event{Kind: KindDeleted, Tab: "Roles", Count: 1, Rows: []int{4}, Message: "Company is blank"},
			expected: "[Roles] Deleted 1 rows where Company is blank (rows 4)",
		},
		{
			name:     "cleared",
			event:    Event{Kind: KindCleared, Tab: "Sheet1", Column: "STATUS", Original: "n/a", Count: 1, Rows: []int{3}},
			expected: "[Sheet1] Cleared 'n/a' in column 'STATUS' (rows 3)",
		},
		{
			name:     "note without tab",
			event:    Event{Kind: KindNote, Message: "nothing to do"},
			expected: "nothing to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.String())
		})
	}
}

func TestLog_SkipsEmptyRowSets(t *testing.T) {
	log := New()
	log.Substituted("Funds", "Fund Status", "a", "b", nil)
	log.Deleted("Roles", "Company is blank", []int{})
	assert.Equal(t, 0, log.Len())
}

func TestLog_OrderAndFilter(t *testing.T) {
	log := New()
	log.Cleared("Sheet1", "STATUS", "0", 2)
	log.Substituted("Funds", "Fund Status", "Open Ended", "Open ended", []int{2})
	log.Notef("Events", "%s data was not found", "Second Close")
	log.Created("Funds", 1)
	log.Created("Events", 0)

	require.Equal(t, 5, log.Len())
	assert.Equal(t, []string{
		"[Sheet1] Cleared '0' in column 'STATUS' (rows 2)",
		"[Funds] Fund Status: 'Open Ended': 'Open ended' => 1 replacements (rows 2)",
		"[Events] Second Close data was not found",
		"[Funds] Tab created with 1 rows",
		"[Events] Tab created with 0 rows",
	}, log.Lines())

	assert.Len(t, log.Filter(KindCreated, ""), 2)
	created := log.Filter(KindCreated, "Events")
	require.Len(t, created, 1)
	assert.Equal(t, 0, created[0].Count)

	events := log.Events()
	events[0].Tab = "changed"
	assert.Equal(t, "Sheet1", log.Events()[0].Tab, "Events returns a copy")
}

func TestLog_WriteTo(t *testing.T) {
	var log Log
	log.Created("Fees", 0)
	log.Created("Roles", 3)

	var buf bytes.Buffer
	n, err := log.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[Fees] Tab created with 0 rows\n[Roles] Tab created with 3 rows\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}
