package transform

import "github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"

// Field copies Source into Dest. An empty Source synthesizes Dest instead
// of copying it.
type Field struct {
	Source string
	Dest   string
}

// Mapping is an ordered list of fields.
type Mapping []Field

// Destinations returns the destination column names in declared order.
func (m Mapping) Destinations() []string {
	out := make([]string, len(m))
	for i, f := range m {
		out[i] = f.Dest
	}
	return out
}

// Project builds a new table named name with one column per mapping entry.
// A destination takes the source column's values when the source sheet has
// that column; otherwise every row gets defaults[dest] (or ""). Source
// schemas vary between exports, so a missing column is never an error.
func Project(src *models.Table, name string, m Mapping, defaults map[string]string) *models.Table {
	out := models.NewTable(name, m.Destinations()...)
	out.Rows = make([]models.Row, src.Len())
	for i := range out.Rows {
		out.Rows[i] = make(models.Row, len(m))
	}
	for _, f := range m {
		if f.Source != "" && src.HasColumn(f.Source) {
			for i, row := range src.Rows {
				out.Rows[i][f.Dest] = row[f.Source]
			}
			continue
		}
		def := defaults[f.Dest]
		for _, row := range out.Rows {
			row[f.Dest] = def
		}
	}
	return out
}
