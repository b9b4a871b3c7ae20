package extract

import (
	"regexp"
	"strconv"
	"strings"

	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

var (
	// "75 - PARIS 15", "2A - Ajaccio", "971 - Pointe-à-Pitre"
	departmentLabelPattern = regexp.MustCompile(`^(\d{1,3}|2[AB])\s*-\s*(.+)$`)

	// "Suisse (Frontalier)", "France (Télétravail)"
	parentheticalPattern = regexp.MustCompile(`^([^(]+)\s*\([^)]*\)\s*$`)

	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
)

// Location converts a raw location label into a LocationInfo. It is a total
// function: any string, empty and non-ASCII included, produces a valid
// struct. An unresolvable label lands in City untouched rather than being
// dropped.
func Location(raw string, source models.Source, tables *taxonomy.Tables) models.LocationInfo {
	label := CleanText(raw)
	info := models.LocationInfo{
		RawLabel: label,
		Country:  source.HomeCountry(),
	}

	if label == "" || taxonomy.MatchesAny(label, tables.RemoteKeywords) {
		info.IsRemote = true
		return info
	}

	label = tables.NormalizeLabel(label)
	if m := parentheticalPattern.FindStringSubmatch(label); m != nil {
		if base := strings.TrimSpace(m[1]); base != "" {
			label = tables.NormalizeLabel(base)
		}
	}

	if m := departmentLabelPattern.FindStringSubmatch(label); m != nil {
		info.DepartmentCode = padDepartmentCode(m[1])
		info.City = CanonicalPlaceName(m[2])
		info.Region = tables.Region(info.DepartmentCode)
		return info
	}

	if tables.IsCountry(label) {
		info.Country = label
		return info
	}

	info.City = CanonicalPlaceName(label)
	return info
}

// LocationWithHints resolves a label together with the structured postal
// code and commune name some sources deliver alongside it. The label keeps
// priority; the postal code fills a missing department and the commune a
// missing city. Empty hints make it equivalent to Location.
func LocationWithHints(raw, postalCode, commune string, source models.Source, tables *taxonomy.Tables) models.LocationInfo {
	info := Location(raw, source, tables)
	if info.IsRemote {
		return info
	}

	if info.DepartmentCode == "" {
		if dept := departmentFromPostalCode(postalCode); dept != "" {
			info.DepartmentCode = dept
			info.Region = tables.Region(dept)
		}
	}

	if info.City == "" {
		if name := strings.TrimSpace(commune); name != "" && !looksLikeInseeCode(name) {
			info.City = CanonicalPlaceName(name)
		}
	}

	return info
}

// departmentFromPostalCode derives the department from a five-digit postal
// code. Corsican 20xxx codes split on the 20200 boundary since the 2A/2B
// department prefix does not appear in postal codes; overseas codes keep
// three digits.
func departmentFromPostalCode(code string) string {
	code = strings.TrimSpace(code)
	if !postalCodePattern.MatchString(code) {
		return ""
	}

	if strings.HasPrefix(code, "20") {
		n, _ := strconv.Atoi(code)
		if n >= 20200 && n < 20620 {
			return "2A"
		}
		return "2B"
	}
	if strings.HasPrefix(code, "97") || strings.HasPrefix(code, "98") {
		return code[:3]
	}
	return code[:2]
}

// looksLikeInseeCode filters commune values that are numeric INSEE
// identifiers ("75115") rather than names.
func looksLikeInseeCode(s string) bool {
	digitsOnly := true
	for _, r := range s {
		if r < '0' || r > '9' {
			digitsOnly = false
			break
		}
	}
	if digitsOnly {
		return true
	}
	return len(s) == 5 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

func padDepartmentCode(code string) string {
	if len(code) == 1 {
		return "0" + code
	}
	return code
}
