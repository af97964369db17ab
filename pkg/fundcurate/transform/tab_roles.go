package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/models"
	"github.com/ukaji3/fundcurate-go/pkg/fundcurate/report"
)

// Company markers used by the export instead of a firm name.
const (
	markerConfidential = "used but not specified"
	markerNotUsed      = "not used"
)

// RolesColumns is the column order of the Roles tab.
var RolesColumns = []string{ColFund, ColCompany, ColRole, ColNotUsed, ColConfidential}

// roleSources pairs each service-provider column with the role it fills.
var roleSources = []struct {
	source string
	role   string
}{
	{SrcGeneralPartner, "General Partner"},
	{SrcPlacementAgents, "Placement Agent"},
	{SrcLawFirms, "Legal Advisor"},
	{SrcAuditors, "Auditor"},
	{SrcAdministrators, "Administrator"},
}

// BuildRoles builds the Roles tab: one row per fund and service provider.
// Marker values become the Not Used and Confidential flags; rows without a
// company or listing several companies are dropped.
func BuildRoles(src *models.Table, log *report.Log) *models.Table {
	t := models.NewTable(models.SheetRoles, ColFund, ColCompany, ColRole)
	for _, rs := range roleSources {
		block := Project(src, t.Name, Mapping{{SrcName, ColFund}, {rs.source, ColCompany}, {"", ColRole}},
			map[string]string{ColRole: rs.role})
		t.Append(block.Rows...)
	}
	t.SetColumn(ColNotUsed, "")
	t.SetColumn(ColConfidential, "")

	lower := cases.Lower(language.Und)
	rewrite(t, ColCompany, func(s string) string {
		if isMarkerWord(firstToken(s)) {
			return lower.String(s)
		}
		return s
	}, log)

	confidential := flag(t, ColConfidential, "TRUE", func(r models.Row) bool {
		return r[ColCompany] == markerConfidential
	}, log)
	for _, i := range confidential {
		t.Rows[i][ColCompany] = ""
	}
	log.Substituted(t.Name, ColCompany, markerConfidential, "", report.DisplayRows(confidential))

	flag(t, ColNotUsed, "TRUE", func(r models.Row) bool {
		return r[ColCompany] == markerNotUsed
	}, log)

	t.Reorder(RolesColumns...)

	// confidential rows were blanked on purpose and stay
	dropped := t.Filter(func(r models.Row) bool {
		return !isBlank(r[ColCompany]) || r[ColConfidential] == "TRUE"
	})
	log.Deleted(t.Name, "Company is blank", report.DisplayRows(dropped))

	dropped = t.Filter(func(r models.Row) bool {
		return !strings.Contains(r[ColCompany], ",")
	})
	log.Deleted(t.Name, "Company lists several firms", report.DisplayRows(dropped))

	rewrite(t, ColCompany, func(s string) string {
		if s == markerNotUsed {
			return ""
		}
		return s
	}, log)

	log.Created(t.Name, t.Len())
	return t
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isMarkerWord(tok string) bool {
	return strings.EqualFold(tok, "used") || strings.EqualFold(tok, "not")
}
