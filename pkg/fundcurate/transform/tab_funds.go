package transform

import (
	"strings"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// lifeExtensionEmpty is how the export spells an empty lifespan extension.
const lifeExtensionEmpty = "nan"

var fundsMapping = Mapping{
	{SrcName, ColFund},
	{SrcFirmName, ColFundManager},
	{SrcCurrency, ColFundCurrency},
	{SrcVintage, ColVintageYear},
	{SrcStatus, ColFundStatus},
	{SrcStrategy, ColFundStyle},
	{SrcAssetClass, ColAssetClass},
	{SrcStructure, ColSeparateAccount},
	{SrcLegalStructure, ColLegalStructure},
	{SrcFundNumberOverall, ColSequenceTotal},
	{SrcFundNumberSeries, ColFundSeries},
	{SrcLifespan, ColFundLife},
	{SrcLifespanExtension, ColFundLifeExtension},
	{SrcTargetSize, ColTargetSize},
	{SrcInitialTarget, ColInitialTarget},
	{SrcHardCap, ColHardCap},
	{SrcFinalCloseSize, ColFinalSize},
	{SrcCoInvestment, ColCoinvesting},
	{"", ColOverrideStatus},
}

// FundsColumns is the column order of the Funds tab.
var FundsColumns = []string{
	ColFund,
	ColFundManager,
	ColFundCurrency,
	ColVintageYear,
	ColFundStatus,
	ColOpenClosed,
	ColFundStyle,
	ColAssetClass,
	ColSeparateAccount,
	ColLegalStructure,
	ColSequenceTotal,
	ColFundSeries,
	ColFundLife,
	ColFundLifeExtension,
	ColTargetSize,
	ColInitialTarget,
	ColHardCap,
	ColFinalSize,
	ColCoinvesting,
	ColOverrideStatus,
}

// BuildFunds builds the Funds tab: one row per fund with normalized status,
// style, asset class and account flag plus the derived Open/Closed column.
func BuildFunds(src *models.Table, log *report.Log) *models.Table {
	t := Project(src, models.SheetFunds, fundsMapping, nil)

	// classification reads the status before it is normalized
	t.SetColumn(ColOpenClosed, "")
	for _, row := range t.Rows {
		row[ColOpenClosed] = OpenClosed(row[ColFundStatus])
	}
	log.CreatedColumn(t.Name, ColOpenClosed, t.Len())

	Normalize(t, ColFundStatus, FundStatusVocabulary, log)
	Normalize(t, ColFundStyle, FundStyleVocabulary, log)
	Normalize(t, ColAssetClass, AssetClassVocabulary, log)
	Normalize(t, ColSeparateAccount, SeparateAccountVocabulary, log)

	rewrite(t, ColFundLifeExtension, lifeExtension, log)

	flag(t, ColOverrideStatus, "True", func(r models.Row) bool {
		return r[ColFundStatus] == "Liquidated"
	}, log)

	t.Reorder(FundsColumns...)
	log.Created(t.Name, t.Len())
	return t
}

// OpenClosed classifies a raw export status.
func OpenClosed(status string) string {
	switch status {
	case "Open Ended", "Open ended (Liquidated)":
		return "Open ended"
	case "Semi-Open Ended":
		return "Quasi-open ended"
	case "Evergreen":
		return "Evergreen"
	default:
		return "Closed ended"
	}
}

func lifeExtension(s string) string {
	s = strings.ReplaceAll(s, "+", ";")
	if s == lifeExtensionEmpty {
		return ""
	}
	return s
}
