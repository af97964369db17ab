package transform

import (
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// buildLookupTab projects NAME and one source column, then normalizes the
// destination column through v.
func buildLookupTab(src *models.Table, tab, source, dest string, v *Vocabulary, log *report.Log) *models.Table {
	t := Project(src, tab, Mapping{{SrcName, ColFund}, {source, dest}}, nil)
	Normalize(t, dest, v, log)
	log.Created(t.Name, t.Len())
	return t
}

// BuildDomicile builds the Domicile tab.
func BuildDomicile(src *models.Table, log *report.Log) *models.Table {
	return buildLookupTab(src, models.SheetDomicile, SrcDomicile, ColDomicile, DomicileVocabulary, log)
}

// BuildPrimaryRegion builds the Target Geographies Primary Region tab.
func BuildPrimaryRegion(src *models.Table, log *report.Log) *models.Table {
	return buildLookupTab(src, models.SheetTargetGeographiesRegion, SrcPrimaryRegion, ColPrimaryRegion, PrimaryRegionVocabulary, log)
}

// BuildPrimarySectors builds the Target Sectors Primary tab.
func BuildPrimarySectors(src *models.Table, log *report.Log) *models.Table {
	return buildLookupTab(src, models.SheetTargetSectorsPrimary, SrcPrimarySector, ColSectorPrimary, PrimarySectorVocabulary, log)
}

// BuildTargetGeographies builds the Target Geographies tab. Exposure lists
// are normalized entry by entry, then the rejoined list is looked up as a
// whole so multi-region keys can still match.
func BuildTargetGeographies(src *models.Table, log *report.Log) *models.Table {
	t := Project(src, models.SheetTargetGeographies, Mapping{{SrcName, ColFund}, {SrcGeographicExposure, ColTargetGeography}}, nil)
	NormalizeTokens(t, ColTargetGeography, GeographyVocabulary, log)
	Normalize(t, ColTargetGeography, GeographyVocabulary, log)
	log.Created(t.Name, t.Len())
	return t
}

// Header-only tabs kept for manual population.
var (
	ActualPerformanceColumns = []string{ColFund, ColPerformanceDate, ColCalled}
	SecondarySectorsColumns  = []string{ColFund, ColSubsectors}
	FeesColumns              = []string{ColFund, ColAttribute, ColValue}
)

func buildHeaderOnly(name string, columns []string, log *report.Log) *models.Table {
	t := models.NewTable(name, columns...)
	log.Created(t.Name, 0)
	return t
}

// BuildActualPerformance builds the empty Actual Performance tab.
func BuildActualPerformance(_ *models.Table, log *report.Log) *models.Table {
	return buildHeaderOnly(models.SheetActualPerformance, ActualPerformanceColumns, log)
}

// BuildSecondarySectors builds the empty Target Sectors Secondary tab.
func BuildSecondarySectors(_ *models.Table, log *report.Log) *models.Table {
	return buildHeaderOnly(models.SheetTargetSectorsSecondary, SecondarySectorsColumns, log)
}

// BuildFees builds the empty Fees tab.
func BuildFees(_ *models.Table, log *report.Log) *models.Table {
	return buildHeaderOnly(models.SheetFees, FeesColumns, log)
}
