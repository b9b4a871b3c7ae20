package extract

import (
	"regexp"
	"strconv"
	"strings"

	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

var (
	// "2 à 5 ans", "3-5 ans", "2 a 5 ans"
	yearRangePattern = regexp.MustCompile(`(\d{1,2})\s*(?:à|a|-|et)\s*(\d{1,2})\s*ans?`)

	// "5 ans et plus", "10+", "+ de 10 ans", "plus de 10 ans"
	openRangePattern = regexp.MustCompile(`(?:\+\s*de\s*|plus de\s*)(\d{1,2})|(\d{1,2})\s*(?:ans?\s*)?(?:\+|et plus)`)

	// "3 ans", "3 An(s)"
	singleYearPattern = regexp.MustCompile(`(\d{1,2})\s*an`)
)

// Experience classifies a free-text experience requirement. Numeric ranges
// take precedence over qualitative vocabulary; no signal at all yields the
// UNSPECIFIED sentinel, which downstream reads as "open to all levels" and
// must never be conflated with a missing field.
func Experience(text string, tables *taxonomy.Tables) models.ExperienceInfo {
	text = CleanText(text)
	if text == "" {
		return models.ExperienceInfo{Level: models.ExperienceUnspecified}
	}
	lower := strings.ToLower(text)

	if m := yearRangePattern.FindStringSubmatch(lower); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		if min > max {
			min, max = max, min
		}
		return models.ExperienceInfo{
			Level:    models.ExperienceYearRange,
			MinYears: models.Int(min),
			MaxYears: models.Int(max),
		}
	}

	if m := openRangePattern.FindStringSubmatch(lower); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		min, _ := strconv.Atoi(raw)
		return models.ExperienceInfo{
			Level:    models.ExperienceYearRange,
			MinYears: models.Int(min),
		}
	}

	if m := singleYearPattern.FindStringSubmatch(lower); m != nil {
		years, _ := strconv.Atoi(m[1])
		return models.ExperienceInfo{
			Level:    models.ExperienceYearRange,
			MinYears: models.Int(years),
			MaxYears: models.Int(years),
		}
	}

	if taxonomy.MatchesAny(lower, tables.JuniorKeywords) {
		return models.ExperienceInfo{Level: models.ExperienceJunior}
	}
	if taxonomy.MatchesAny(lower, tables.SeniorKeywords) {
		return models.ExperienceInfo{Level: models.ExperienceSenior}
	}

	return models.ExperienceInfo{Level: models.ExperienceUnspecified}
}
