package transform

import (
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// Measurement types written to the Performances tab.
const (
	MeasurementNetIRR   = "Target IRR Net"
	MeasurementGrossIRR = "Target IRR (Gross) (%)"
	MeasurementUnit     = "Percentage"
)

// PerformancesColumns is the column order of the Performances tab.
var PerformancesColumns = []string{
	ColFund,
	ColPerformanceDate,
	ColMeasurementType,
	ColMeasurementUnit,
	ColPerformanceMin,
	ColPerformanceMax,
	ColPerformanceSource,
	ColConfidential,
}

func performanceMapping(minCol, maxCol string) Mapping {
	return Mapping{
		{SrcName, ColFund},
		{"", ColPerformanceDate},
		{"", ColMeasurementType},
		{"", ColMeasurementUnit},
		{minCol, ColPerformanceMin},
		{maxCol, ColPerformanceMax},
		{"", ColPerformanceSource},
		{"", ColConfidential},
	}
}

func performanceDefaults(measurement string) map[string]string {
	return map[string]string{
		ColMeasurementType: measurement,
		ColMeasurementUnit: MeasurementUnit,
	}
}

// BuildPerformances builds the Performances tab: target net IRR bounds
// followed by target gross IRR bounds. Net rows without either bound are
// dropped; gross rows are kept as they are.
func BuildPerformances(src *models.Table, log *report.Log) *models.Table {
	net := Project(src, models.SheetPerformances, performanceMapping(SrcNetIRRMin, SrcNetIRRMax), performanceDefaults(MeasurementNetIRR))
	dropped := net.Filter(func(r models.Row) bool {
		return !isBlank(r[ColPerformanceMin]) || !isBlank(r[ColPerformanceMax])
	})
	log.Deleted(net.Name, "both net IRR bounds are blank", report.DisplayRows(dropped))

	// TODO(curation): confirm with research whether gross rows with no bounds should be dropped like net rows.
	gross := Project(src, models.SheetPerformances, performanceMapping(SrcGrossIRRMin, SrcGrossIRRMax), performanceDefaults(MeasurementGrossIRR))

	t := models.NewTable(models.SheetPerformances, PerformancesColumns...)
	offset := 0
	for _, block := range []struct {
		label string
		rows  []models.Row
	}{
		{MeasurementNetIRR, net.Rows},
		{MeasurementGrossIRR, gross.Rows},
	} {
		t.Append(block.rows...)
		log.Notef(t.Name, "%s: %d rows written starting at row %d", block.label, len(block.rows), report.DisplayRow(offset))
		offset += len(block.rows)
	}
	log.Created(t.Name, t.Len())
	return t
}
