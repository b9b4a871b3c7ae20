package extract

import (
	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

// Contract classifies the contract type from the explicit contract field,
// falling back to the posting title when the field is inconclusive (a
// "Stage - Data Analyst" title with no contract field still classifies as
// STAGE). Ties are broken by the fixed taxonomy priority order so the
// result is deterministic when several keyword sets match. Total function,
// defaults to OTHER.
//
// The part-time return is a secondary attribute: an explicit part-time
// marker never changes the contract type.
func Contract(explicit, title string, tables *taxonomy.Tables) (models.ContractType, bool) {
	partTime := taxonomy.MatchesAny(explicit, tables.PartTimeKeywords) ||
		taxonomy.MatchesAny(title, tables.PartTimeKeywords)

	for _, field := range []string{explicit, title} {
		if field == "" {
			continue
		}
		// Keywords with a trailing space ("intern ") anchor at a word end;
		// padding lets them match at the end of the field too without
		// matching inside words ("international").
		field = " " + field + " "
		for _, contractType := range tables.ContractPriority {
			if taxonomy.MatchesAny(field, tables.ContractKeywords[contractType]) {
				return contractType, partTime
			}
		}
	}

	return models.ContractOther, partTime
}
