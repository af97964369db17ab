// Package report accumulates the audit trail of a curation run.
//
// Builders append structured events to a Log as they transform data; the
// Log renders them as one human-readable line each, in the order they were
// recorded.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind classifies a report event.
type Kind string

const (
	// KindCreated records a tab or column being created.
	KindCreated Kind = "created"
	// KindSubstituted records the replacement of one original value in a column.
	KindSubstituted Kind = "substituted"
	// KindDeleted records rows removed from a tab.
	KindDeleted Kind = "deleted"
	// KindCleared records a sentinel cell blanked in a source sheet.
	KindCleared Kind = "cleared"
	// KindNote records free-form information such as skipped blocks.
	KindNote Kind = "note"
)

// SampleRows is the number of display rows listed before eliding with "...".
const SampleRows = 5

// Event is one entry of the audit trail.
type Event struct {
	Kind Kind `json:"kind"`
	// Tab is the output tab (or source sheet for cleared cells).
	Tab string `json:"tab,omitempty"`
	// Column is the affected column, if any.
	Column string `json:"column,omitempty"`
	// Original is the value before substitution.
	Original string `json:"original,omitempty"`
	// Replacement is the value after substitution.
	Replacement string `json:"replacement,omitempty"`
	// Count is the number of affected cells or rows.
	Count int `json:"count"`
	// Rows lists every affected display row.
	Rows []int `json:"rows,omitempty"`
	// Message carries the text of notes and the reason of deletions.
	Message string `json:"message,omitempty"`
}

// Log is an append-only list of events.
// The zero value is ready to use.
type Log struct {
	events []Event
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// DisplayRow converts a 0-based table index to the 1-based row number shown
// in a spreadsheet whose first row is the header.
func DisplayRow(index int) int {
	return index + 2
}

// DisplayRows converts table indices with DisplayRow.
func DisplayRows(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	rows := make([]int, len(indices))
	for i, idx := range indices {
		rows[i] = DisplayRow(idx)
	}
	return rows
}

// Add appends an event.
func (l *Log) Add(e Event) {
	l.events = append(l.events, e)
}

// Created records a tab built with the given number of rows.
func (l *Log) Created(tab string, rows int) {
	l.Add(Event{Kind: KindCreated, Tab: tab, Count: rows})
}

// CreatedColumn records a derived column added to a tab.
func (l *Log) CreatedColumn(tab, column string, rows int) {
	l.Add(Event{Kind: KindCreated, Tab: tab, Column: column, Count: rows})
}

// Substituted records every replacement of original by replacement in one
// column. rows are display rows. Nothing is recorded when rows is empty.
func (l *Log) Substituted(tab, column, original, replacement string, rows []int) {
	if len(rows) == 0 {
		return
	}
	l.Add(Event{
		Kind:        KindSubstituted,
		Tab:         tab,
		Column:      column,
		Original:    original,
		Replacement: replacement,
		Count:       len(rows),
		Rows:        rows,
	})
}

// Deleted records rows removed from a tab for the given reason.
// Nothing is recorded when rows is empty.
func (l *Log) Deleted(tab, reason string, rows []int) {
	if len(rows) == 0 {
		return
	}
	l.Add(Event{Kind: KindDeleted, Tab: tab, Count: len(rows), Rows: rows, Message: reason})
}

// Cleared records a sentinel value blanked in a source sheet.
func (l *Log) Cleared(sheet, column, value string, row int) {
	l.Add(Event{Kind: KindCleared, Tab: sheet, Column: column, Original: value, Count: 1, Rows: []int{row}})
}

// Notef records a formatted note against a tab.
func (l *Log) Notef(tab, format string, args ...any) {
	l.Add(Event{Kind: KindNote, Tab: tab, Message: fmt.Sprintf(format, args...)})
}

// Events returns a copy of the recorded events.
func (l *Log) Events() []Event {
	return append([]Event(nil), l.events...)
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Filter returns the events of one kind recorded against tab.
// An empty tab matches every tab.
func (l *Log) Filter(kind Kind, tab string) []Event {
	var out []Event
	for _, e := range l.events {
		if e.Kind == kind && (tab == "" || e.Tab == tab) {
			out = append(out, e)
		}
	}
	return out
}

// Lines renders every event, one line each.
func (l *Log) Lines() []string {
	lines := make([]string, len(l.events))
	for i, e := range l.events {
		lines[i] = e.String()
	}
	return lines
}

// String renders the whole log as newline-terminated lines.
func (l *Log) String() string {
	var b strings.Builder
	for _, line := range l.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendered log to w.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())
	return int64(n), err
}

// String renders the event as a single report line.
func (e Event) String() string {
	prefix := ""
	if e.Tab != "" {
		prefix = "[" + e.Tab + "] "
	}
	switch e.Kind {
	case KindCreated:
		if e.Column != "" {
			return fmt.Sprintf("%sColumn '%s' created (%d rows)", prefix, e.Column, e.Count)
		}
		return fmt.Sprintf("%sTab created with %d rows", prefix, e.Count)
	case KindSubstituted:
		return fmt.Sprintf("%s%s: '%s': '%s' => %d replacements %s",
			prefix, e.Column, e.Original, e.Replacement, e.Count, FormatRows(e.Rows))
	case KindDeleted:
		return fmt.Sprintf("%sDeleted %d rows where %s %s", prefix, e.Count, e.Message, FormatRows(e.Rows))
	case KindCleared:
		return fmt.Sprintf("%sCleared '%s' in column '%s' %s", prefix, e.Original, e.Column, FormatRows(e.Rows))
	default:
		return prefix + e.Message
	}
}

// FormatRows renders display rows as "(rows 2, 3)", keeping the first
// SampleRows entries and eliding the rest with "...".
func FormatRows(rows []int) string {
	if len(rows) == 0 {
		return "(rows )"
	}
	shown := rows
	if len(shown) > SampleRows {
		shown = shown[:SampleRows]
	}
	parts := make([]string, len(shown))
	for i, r := range shown {
		parts[i] = strconv.Itoa(r)
	}
	out := "rows " + strings.Join(parts, ", ")
	if len(rows) > SampleRows {
		out += ", ..."
	}
	return "(" + out + ")"
}
