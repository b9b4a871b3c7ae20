// Package taxonomy holds the static vocabularies and reference tables the
// field extractors match against. Tables are loaded once at startup and are
// read-only afterwards, so concurrent use needs no locking.
package taxonomy

import (
	"strings"

	"jobmill/internal/models"
)

type Tables struct {
	// ContractKeywords maps each canonical contract type to the lowercase
	// substrings that identify it. ContractPriority fixes the tie-break
	// order when several sets match.
	ContractKeywords map[models.ContractType][]string
	ContractPriority []models.ContractType
	PartTimeKeywords []string

	JuniorKeywords []string
	SeniorKeywords []string

	Technologies []string

	RemoteKeywords     []string
	NegotiableKeywords []string

	// DepartmentRegions maps a department code ("75", "2A", "971") to its
	// region after the 2016 territorial reform.
	DepartmentRegions map[string]string

	// Countries is the set of country names recognized in location labels.
	Countries map[string]bool

	// LabelNormalization folds accent/case variants of the same place name
	// into one canonical spelling.
	LabelNormalization map[string]string
}

// Region resolves a department code to its region, empty when unknown.
func (t *Tables) Region(departmentCode string) string {
	return t.DepartmentRegions[departmentCode]
}

// NormalizeLabel returns the canonical spelling for a place label when the
// normalization table knows a variant, otherwise the label unchanged.
func (t *Tables) NormalizeLabel(label string) string {
	if canonical, ok := t.LabelNormalization[label]; ok {
		return canonical
	}
	return label
}

// IsCountry reports whether label names a recognized country.
func (t *Tables) IsCountry(label string) bool {
	return t.Countries[label]
}

// MatchesAny reports whether the lowercase form of text contains any of the
// given keywords.
func MatchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
