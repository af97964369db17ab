package transform

import (
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// EventsColumns is the column order of the Events tab.
var EventsColumns = []string{ColFund, ColEventDate, ColEventType, ColTitle, ColCloseSize}

// Closes lists the interim close statuses in milestone order with the
// ordinal used in event titles.
var Closes = []struct {
	Status  string
	Ordinal string
}{
	{"First Close", "first"},
	{"Second Close", "second"},
	{"Third Close", "third"},
	{"Fourth Close", "fourth"},
	{"Fifth Close", "fifth"},
	{"Sixth Close", "sixth"},
	{"Seventh Close", "seventh"},
}

// eventBlock describes one group of event rows derived from the source.
type eventBlock struct {
	eventType string
	dateCol   string
	sizeCol   string
	suffix    string
	match     func(models.Row) bool
	// optional blocks are skipped with a note when nothing matches
	optional bool
}

func (b eventBlock) rows(src *models.Table) []models.Row {
	var out []models.Row
	for _, r := range src.Rows {
		if !b.match(r) {
			continue
		}
		size := ""
		if b.sizeCol != "" {
			size = r[b.sizeCol]
		}
		out = append(out, models.Row{
			ColFund:      r[SrcName],
			ColEventDate: r[b.dateCol],
			ColEventType: b.eventType,
			ColTitle:     r[SrcName] + b.suffix,
			ColCloseSize: size,
		})
	}
	return out
}

func eventBlocks() []eventBlock {
	blocks := []eventBlock{
		{
			eventType: "Launch",
			dateCol:   SrcLaunchDate,
			suffix:    " launches",
			match:     func(r models.Row) bool { return !isBlank(r[SrcLaunchDate]) },
		},
		{
			eventType: "Final Close",
			dateCol:   SrcFinalCloseDate,
			sizeCol:   SrcFinalCloseSize,
			suffix:    " reaches final close",
			match:     func(r models.Row) bool { return !isBlank(r[SrcFinalCloseDate]) },
		},
	}
	for _, c := range Closes {
		status := c.Status
		blocks = append(blocks, eventBlock{
			eventType: status,
			dateCol:   SrcInterimCloseDate,
			sizeCol:   SrcInterimCloseSize,
			suffix:    " reaches " + c.Ordinal + " close",
			match:     func(r models.Row) bool { return r[SrcStatus] == status },
			optional:  true,
		})
	}
	return blocks
}

// BuildEvents builds the Events tab from launch, final close and interim
// close information. Blocks are written one after another; each starts at
// the running total of rows already written. It returns nil when the export
// lacks the launch date or final close size column.
func BuildEvents(src *models.Table, log *report.Log) *models.Table {
	for _, col := range []string{SrcLaunchDate, SrcFinalCloseSize} {
		if !src.HasColumn(col) {
			log.Notef(models.SheetEvents, "column '%s' not found; Events tab not created", col)
			return nil
		}
	}

	t := models.NewTable(models.SheetEvents, EventsColumns...)
	offset := 0
	for _, b := range eventBlocks() {
		rows := b.rows(src)
		if b.optional && len(rows) == 0 {
			log.Notef(t.Name, "%s data was not found", b.eventType)
			continue
		}
		t.Append(rows...)
		log.Notef(t.Name, "%s: %d rows written starting at row %d", b.eventType, len(rows), report.DisplayRow(offset))
		offset += len(rows)
	}
	log.Created(t.Name, t.Len())
	return t
}
