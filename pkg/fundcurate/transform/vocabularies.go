package transform

// Controlled vocabularies mapping export wording to the curated taxonomy.
// Terms are listed as they were agreed with the research team; a key listed
// twice keeps its last value and is surfaced by Vocabulary.Conflicts.

// FundStatusVocabulary normalizes STATUS.
var FundStatusVocabulary = NewVocabulary("Fund Status",
	Term{"Open Ended", "Open ended"},
	Term{"Open ended (Liquidated)", "Liquidated"},
	Term{"Semi-Open Ended", "Open ended"},
	Term{"Evergreen", "Open ended"},
	Term{"Pre-Marketing", "Pre-marketing"},
	Term{"Launched", "Raising"},
	Term{"First Close", "Raising"},
	Term{"Second Close", "Raising"},
	Term{"Third Close", "Raising"},
	Term{"Fourth Close", "Raising"},
	Term{"Fifth Close", "Raising"},
	Term{"Sixth Close", "Raising"},
	Term{"Seventh Close", "Raising"},
	Term{"Closed to New Investment", "Closed"},
	Term{"Investing", "Closed"},
	Term{"Harvesting", "Closed"},
	Term{"Semi-Open Ended", "Open ended"},
	Term{"Abandoned", "Liquidated"},
	Term{"Wound Up", "Liquidated"},
)

// FundStyleVocabulary normalizes STRATEGY.
var FundStyleVocabulary = NewVocabulary("Fund Style",
	Term{"Infrastructure Core", "Core"},
	Term{"Infrastructure Core-Plus", "Core-Plus"},
	Term{"Infrastructure Value Added", "Value Added"},
	Term{"Infrastructure Opportunistic", "Opportunistic"},
	Term{"Infrastructure Debt", "Debt"},
	Term{"Infrastructure Fund of Funds", "Fund of Funds"},
	Term{"Infrastructure Secondaries", "Secondaries"},
	Term{"Infrastructure Co-Investment", "Co-Investment"},
	Term{"Real Estate Core", "Core"},
	Term{"Real Estate Core-Plus", "Core-Plus"},
	Term{"Real Estate Value Added", "Value Added"},
	Term{"Real Estate Opportunistic", "Opportunistic"},
	Term{"Real Estate Debt", "Debt"},
	Term{"Real Estate Fund of Funds", "Fund of Funds"},
	Term{"Real Estate Secondaries", "Secondaries"},
	Term{"Diversified", ""},
)

// AssetClassVocabulary normalizes ASSET CLASS.
var AssetClassVocabulary = NewVocabulary("Asset Class",
	Term{"Infrastructure", "Real Assets"},
	Term{"Real Estate", "Real Assets"},
	Term{"Natural Resources", "Real Assets"},
	Term{"Private Debt", "Private Credit"},
	Term{"Venture Capital", "Private Equity"},
	Term{"Buyout", "Private Equity"},
	Term{"Growth", "Private Equity"},
)

// SeparateAccountVocabulary turns FUND STRUCTURE into a separate-account flag.
var SeparateAccountVocabulary = NewVocabulary("Separate Account",
	Term{"Separate Account", "True"},
	Term{"Separately Managed Account", "True"},
	Term{"Managed Account", "True"},
	Term{"Commingled", "False"},
	Term{"Commingled Fund", "False"},
	Term{"Fund of One", "True"},
	Term{"Co-Investment Vehicle", "False"},
)

// DomicileVocabulary normalizes DOMICILE to country names.
var DomicileVocabulary = NewVocabulary("Domicile",
	Term{"UK", "United Kingdom"},
	Term{"England", "United Kingdom"},
	Term{"Scotland", "United Kingdom"},
	Term{"US", "United States"},
	Term{"USA", "United States"},
	Term{"Delaware", "United States"},
	Term{"Cayman", "Cayman Islands"},
	Term{"Guernsey", "Channel Islands"},
	Term{"Jersey", "Channel Islands"},
	Term{"Netherlands, The", "Netherlands"},
	Term{"Korea, Republic of", "South Korea"},
	Term{"Hong Kong SAR - China", "Hong Kong"},
	Term{"Luxembourg (SICAV)", "Luxembourg"},
	Term{"Luxembourg (SCSp)", "Luxembourg"},
)

// PrimaryRegionVocabulary normalizes PRIMARY REGION FOCUS to regions.
var PrimaryRegionVocabulary = NewVocabulary("Target Geographies Primary Region",
	Term{"US", "North America"},
	Term{"Americas", "North America"},
	Term{"West Europe", "Europe"},
	Term{"Western Europe", "Europe"},
	Term{"Central & East Europe", "Europe"},
	Term{"Nordic", "Europe"},
	Term{"Asia", "Asia Pacific"},
	Term{"APAC", "Asia Pacific"},
	Term{"Asia-Pacific", "Asia Pacific"},
	Term{"Australasia", "Asia Pacific"},
	Term{"Middle East & Israel", "Middle East and Africa"},
	Term{"Africa", "Middle East and Africa"},
	Term{"Latin America", "South America"},
	Term{"Diversified Multi-Regional", "Global"},
	Term{"Rest of World", "Global"},
)

// GeographyVocabulary normalizes each entry of GEOGRAPHIC EXPOSURE. The
// multi-region key only matches a whole rejoined list.
var GeographyVocabulary = NewVocabulary("Fund Target Geography",
	Term{"US", "United States"},
	Term{"UK", "United Kingdom"},
	Term{"West Europe", "Western Europe"},
	Term{"Asia", "Asia Pacific"},
	Term{"APAC", "Asia Pacific"},
	Term{"Latin America", "South America"},
	Term{"Middle East & Israel", "Middle East"},
	Term{"Diversified Multi-Regional", "Global"},
	Term{"North America, Europe, Asia Pacific", "Global"},
)

// PrimarySectorVocabulary normalizes INF: PRIMARY SECTOR.
var PrimarySectorVocabulary = NewVocabulary("Sector - Primary",
	Term{"Renewable Energy", "Renewables"},
	Term{"Energy", "Conventional Energy"},
	Term{"Utilities", "Utilities & Power"},
	Term{"Transportation", "Transport"},
	Term{"Telecoms", "Telecommunications"},
	Term{"Social", "Social Infrastructure"},
	Term{"Hotel", "Hospitality"},
	Term{"Residential", "Real Estate - Residential"},
	Term{"Office", "Real Estate - Office"},
	Term{"Diversified", "Multi-Sector"},
	Term{"Hotel", "Hotels & Leisure"},
)

// Vocabularies returns every vocabulary used by the tab builders.
func Vocabularies() []*Vocabulary {
	return []*Vocabulary{
		FundStatusVocabulary,
		FundStyleVocabulary,
		AssetClassVocabulary,
		SeparateAccountVocabulary,
		DomicileVocabulary,
		PrimaryRegionVocabulary,
		GeographyVocabulary,
		PrimarySectorVocabulary,
	}
}
