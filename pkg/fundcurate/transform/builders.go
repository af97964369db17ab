package transform

import (
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// BuildFunc builds one curated tab from a cleaned source table.
// A nil table means the tab could not be built; the reason is in the log.
type BuildFunc func(src *models.Table, log *report.Log) *models.Table

// Builder names a tab and the function that builds it.
type Builder struct {
	Tab   string
	Build BuildFunc
}

// Builders returns the tab builders in the order they run. The report
// follows this order.
func Builders() []Builder {
	return []Builder{
		{models.SheetFunds, BuildFunds},
		{models.SheetEvents, BuildEvents},
		{models.SheetPerformances, BuildPerformances},
		{models.SheetDomicile, BuildDomicile},
		{models.SheetTargetGeographies, BuildTargetGeographies},
		{models.SheetTargetGeographiesRegion, BuildPrimaryRegion},
		{models.SheetTargetSectorsPrimary, BuildPrimarySectors},
		{models.SheetTargetSectorsSecondary, BuildSecondarySectors},
		{models.SheetRoles, BuildRoles},
		{models.SheetFees, BuildFees},
		{models.SheetActualPerformance, BuildActualPerformance},
	}
}
