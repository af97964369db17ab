package models

// Output tab names. Excel caps sheet names at 31 characters, so the primary
// region tab keeps its historical 31-character truncation.
const (
	SheetFunds                   = "Funds"
	SheetEvents                  = "Events"
	SheetPerformances            = "Performances"
	SheetActualPerformance       = "Actual Performance"
	SheetDomicile                = "Domicile"
	SheetTargetGeographiesRegion = "Target_Geographies_Primary_Regi"
	SheetTargetGeographies       = "Target_Geographies"
	SheetTargetSectorsPrimary    = "Target_Sectors_Primary"
	SheetTargetSectorsSecondary  = "Target_Sectors_Secondary"
	SheetRoles                   = "Roles"
	SheetFees                    = "Fees"
)

// SheetOrder is the order in which tabs appear in the curated workbook.
var SheetOrder = []string{
	SheetFunds,
	SheetEvents,
	SheetPerformances,
	SheetActualPerformance,
	SheetDomicile,
	SheetTargetGeographiesRegion,
	SheetTargetGeographies,
	SheetTargetSectorsPrimary,
	SheetTargetSectorsSecondary,
	SheetRoles,
	SheetFees,
}
