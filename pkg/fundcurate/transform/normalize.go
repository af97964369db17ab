package transform

import (
	"strings"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// Normalize replaces every cell of column that exactly matches a vocabulary
// key with the key's canonical value. One substitution event is recorded per
// key found, in vocabulary order. Keys mapping to themselves are left alone,
// so a second pass over normalized data records nothing.
// It returns the number of cells changed.
func Normalize(t *models.Table, column string, v *Vocabulary, log *report.Log) int {
	if !t.HasColumn(column) {
		return 0
	}
	hits := make(map[string][]int)
	for i, row := range t.Rows {
		orig := row[column]
		repl, ok := v.Lookup(orig)
		if !ok || repl == orig {
			continue
		}
		row[column] = repl
		hits[orig] = append(hits[orig], i)
	}
	return reportHits(t, column, v, hits, log)
}

// NormalizeTokens treats each cell of column as a comma-separated list:
// tokens are trimmed, replaced one by one through the vocabulary and joined
// back with ", ". Rows are listed once per distinct token replaced.
func NormalizeTokens(t *models.Table, column string, v *Vocabulary, log *report.Log) int {
	if !t.HasColumn(column) {
		return 0
	}
	hits := make(map[string][]int)
	for i, row := range t.Rows {
		value := row[column]
		if value == "" {
			continue
		}
		tokens := strings.Split(value, ",")
		for j, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if repl, ok := v.Lookup(tok); ok && repl != tok {
				if rows := hits[tok]; len(rows) == 0 || rows[len(rows)-1] != i {
					hits[tok] = append(rows, i)
				}
				tok = repl
			}
			tokens[j] = tok
		}
		row[column] = strings.Join(tokens, ", ")
	}
	return reportHits(t, column, v, hits, log)
}

func reportHits(t *models.Table, column string, v *Vocabulary, hits map[string][]int, log *report.Log) int {
	changed := 0
	for _, key := range v.keys {
		rows := hits[key]
		if len(rows) == 0 {
			continue
		}
		log.Substituted(t.Name, column, key, v.terms[key], report.DisplayRows(rows))
		changed += len(rows)
	}
	return changed
}

// rewrite applies fn to every cell of column and records one substitution
// event per distinct original value that fn changed, in order of first
// appearance.
func rewrite(t *models.Table, column string, fn func(string) string, log *report.Log) int {
	var order []string
	hits := make(map[string][]int)
	repl := make(map[string]string)
	for i, row := range t.Rows {
		orig := row[column]
		next := fn(orig)
		if next == orig {
			continue
		}
		row[column] = next
		if _, seen := hits[orig]; !seen {
			order = append(order, orig)
			repl[orig] = next
		}
		hits[orig] = append(hits[orig], i)
	}
	changed := 0
	for _, orig := range order {
		log.Substituted(t.Name, column, orig, repl[orig], report.DisplayRows(hits[orig]))
		changed += len(hits[orig])
	}
	return changed
}

// flag sets column to value on every row matching pred and records the rows
// as a synthetic substitution from "" to value.
func flag(t *models.Table, column, value string, pred func(models.Row) bool, log *report.Log) []int {
	var rows []int
	for i, row := range t.Rows {
		if pred(row) {
			row[column] = value
			rows = append(rows, i)
		}
	}
	log.Substituted(t.Name, column, "", value, report.DisplayRows(rows))
	return rows
}

// isBlank reports whether a cell holds no value. Spreadsheet exports spell
// missing numbers as "nan".
func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}
