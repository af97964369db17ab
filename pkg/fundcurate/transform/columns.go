// Package transform re-projects fund export rows into the curated tabs.
//
// Every builder is a pure function of the source table: it projects the
// columns it needs into a new table, applies its business rules and records
// each substitution and deletion in the shared report log.
package transform

// Source export columns.
const (
	SrcName               = "NAME"
	SrcFirmName           = "FIRM NAME"
	SrcCurrency           = "FUND CURRENCY"
	SrcVintage            = "VINTAGE / INCEPTION YEAR"
	SrcStatus             = "STATUS"
	SrcStrategy           = "STRATEGY"
	SrcAssetClass         = "ASSET CLASS"
	SrcStructure          = "FUND STRUCTURE"
	SrcLegalStructure     = "FUND LEGAL STRUCTURE"
	SrcFundNumberOverall  = "FUND NUMBER (OVERALL)"
	SrcFundNumberSeries   = "FUND NUMBER (SERIES)"
	SrcLifespan           = "LIFESPAN (YEARS)"
	SrcLifespanExtension  = "LIFESPAN EXTENSION"
	SrcTargetSize         = "TARGET SIZE (CURR. MN)"
	SrcInitialTarget      = "INITIAL TARGET (CURR. MN)"
	SrcHardCap            = "HARD CAP (CURR. MN)"
	SrcCoInvestment       = "OFFER CO-INVESTMENT OPPORTUNITIES TO LPS?"
	SrcLaunchDate         = "FUND RAISING LAUNCH DATE"
	SrcFinalCloseDate     = "FINAL CLOSE DATE"
	SrcFinalCloseSize     = "FINAL CLOSE SIZE (CURR. MN)"
	SrcInterimCloseDate   = "LATEST INTERIM CLOSE DATE"
	SrcInterimCloseSize   = "LATEST INTERIM CLOSE SIZE (CURR. MN)"
	SrcNetIRRMin          = "TARGET IRR - NET MIN"
	SrcNetIRRMax          = "TARGET IRR - NET MAX"
	SrcGrossIRRMin        = "TARGET IRR - GROSS MIN"
	SrcGrossIRRMax        = "TARGET IRR - GROSS MAX"
	SrcDomicile           = "DOMICILE"
	SrcPrimaryRegion      = "PRIMARY REGION FOCUS"
	SrcGeographicExposure = "GEOGRAPHIC EXPOSURE"
	SrcPrimarySector      = "INF: PRIMARY SECTOR"
	SrcGeneralPartner     = "GENERAL PARTNER"
	SrcPlacementAgents    = "PLACEMENT AGENTS"
	SrcLawFirms           = "LAW FIRMS"
	SrcAuditors           = "AUDITORS"
	SrcAdministrators     = "ADMINISTRATORS"
)

// Curated columns shared by several tabs.
const (
	ColFund         = "Fund"
	ColConfidential = "Confidential"
)

// Funds tab columns.
const (
	ColFundManager       = "Fund Manager"
	ColFundCurrency      = "Fund Currency"
	ColVintageYear       = "Vintage Year"
	ColFundStatus        = "Fund Status"
	ColOpenClosed        = "Open/Closed"
	ColFundStyle         = "Fund Style"
	ColAssetClass        = "Asset Class"
	ColSeparateAccount   = "Separate Account"
	ColLegalStructure    = "Legal Structure"
	ColSequenceTotal     = "Fund Sequence (Total)"
	ColFundSeries        = "Fund Series"
	ColFundLife          = "Fund Life"
	ColFundLifeExtension = "Fund Life Extension"
	ColTargetSize        = "Target Size (Local Currency m)"
	ColInitialTarget     = "Initial Target Size (Local Currency m)"
	ColHardCap           = "Hard Cap (Local Currency m)"
	ColFinalSize         = "Final Size (Local Currency m)"
	ColCoinvesting       = "Fund coinvesting Lps"
	ColOverrideStatus    = "Overide Fund Status"
)

// Events tab columns.
const (
	ColEventDate = "Event Date"
	ColEventType = "Event Type"
	ColTitle     = "Title"
	ColCloseSize = "Close Size"
)

// Performances tab columns.
const (
	ColPerformanceDate   = "Performance Date"
	ColMeasurementType   = "Fund Performance Measurement Type"
	ColMeasurementUnit   = "Fund Performance Measurement Unit"
	ColPerformanceMin    = "Performance Value (Min)"
	ColPerformanceMax    = "Performance Value (Max)"
	ColPerformanceSource = "Performance Source"
	ColCalled            = "Called (%)"
)

// Geography, sector, role and fee columns.
const (
	ColDomicile        = "Domicile"
	ColPrimaryRegion   = "Target Geographies Primary Region"
	ColTargetGeography = "Fund Target Geography"
	ColSectorPrimary   = "Sector - Primary"
	ColSubsectors      = "Fund Subsectors"
	ColCompany         = "Company"
	ColRole            = "Role"
	ColNotUsed         = "Not Used"
	ColAttribute       = "Attribute"
	ColValue           = "Value"
)
