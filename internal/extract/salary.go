package extract

import (
	"regexp"
	"strconv"
	"strings"

	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

var (
	// Amounts explicitly tied to a currency marker. Matching these first
	// keeps stray numbers ("sur 12 mois") out of the salary bounds.
	currencyAmountPattern = regexp.MustCompile(`(\d+(?:[  ]\d{3})*(?:[.,]\d+)?)\s*(k?)\s*(?:€|euros?\b|eur\b|\$|£)`)

	// Bare numeric tokens with an optional K magnitude suffix, used only
	// when no currency-marked amount is present ("35K - 45K annuel").
	bareAmountPattern = regexp.MustCompile(`(\d+(?:[  ]\d{3})*(?:[.,]\d+)?)\s*(k\b)?`)

	// "37/40" style weekly-hours ratios that must never be read as a
	// salary range.
	hoursRatioPattern = regexp.MustCompile(`\b(\d{1,3})\s*/\s*(\d{1,3})\b`)

	// "eur" as a standalone word, so "35000 EUR" counts but "heures" and
	// "coiffeur" do not.
	eurWordPattern = regexp.MustCompile(`\beur\b`)
)

var periodKeywords = []struct {
	period   models.SalaryPeriod
	keywords []string
}{
	{models.PeriodAnnual, []string{"annuel", "par an", "/an", "yearly", "per year", "annum"}},
	{models.PeriodMonthly, []string{"mensuel", "par mois", "/mois", "monthly", "per month"}},
	{models.PeriodWeekly, []string{"hebdomadaire", "par semaine", "/semaine", "weekly"}},
	{models.PeriodDaily, []string{"journalier", "par jour", "/jour", "tjm", "daily", "per day"}},
	{models.PeriodHourly, []string{"horaire", "de l'heure", "par heure", "/h ", "/heure", "hourly", "per hour"}},
}

// Salary parses a free-text salary field into a SalaryInfo. A nil result is
// the absent-marker: the field legitimately carries no salary (empty,
// negotiable vocabulary, or a weekly-hours ratio). It never fails on
// malformed input.
func Salary(text string, source models.Source, tables *taxonomy.Tables) *models.SalaryInfo {
	text = CleanText(text)
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	if taxonomy.MatchesAny(lower, tables.NegotiableKeywords) {
		return nil
	}

	currency, currencyFound := detectCurrency(text, source)

	// An "N/M" pair of small integers with no currency anywhere in the
	// field is a weekly-hours ratio ("37/40"), not a salary. Storing those
	// as salaries poisons every aggregate downstream.
	if !currencyFound {
		if m := hoursRatioPattern.FindStringSubmatch(lower); m != nil {
			left, _ := strconv.Atoi(m[1])
			right, _ := strconv.Atoi(m[2])
			if left <= 60 && right <= 60 {
				return nil
			}
		}
	}

	amounts := parseAmounts(lower)
	if len(amounts) == 0 {
		return nil
	}

	min := amounts[0]
	max := min
	if len(amounts) > 1 {
		max = amounts[1]
	}
	if min > max {
		min, max = max, min
	}

	period := detectPeriod(lower)
	if period == "" {
		// No period vocabulary: infer from magnitude. French annual offers
		// are quoted in thousands, monthly ones in the low four digits.
		switch {
		case min >= 6000:
			period = models.PeriodAnnual
		case min >= 1000:
			period = models.PeriodMonthly
		}
	}

	return &models.SalaryInfo{
		Min:      models.Float(min),
		Max:      models.Float(max),
		Currency: currency,
		Period:   period,
	}
}

func detectCurrency(text string, source models.Source) (string, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(text, "£"):
		return "GBP", true
	case strings.Contains(text, "$"):
		return "USD", true
	case strings.Contains(text, "€"), strings.Contains(lower, "euro"), eurWordPattern.MatchString(lower):
		return "EUR", true
	}
	return source.DefaultCurrency(), false
}

func detectPeriod(lower string) models.SalaryPeriod {
	for _, entry := range periodKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.period
			}
		}
	}
	return ""
}

// parseAmounts returns at most the first two numeric tokens, K magnitude
// expanded. Currency-marked amounts win over bare ones.
func parseAmounts(lower string) []float64 {
	matches := currencyAmountPattern.FindAllStringSubmatch(lower, 2)
	if len(matches) == 0 {
		matches = bareAmountPattern.FindAllStringSubmatch(lower, 2)
	}

	var amounts []float64
	for _, m := range matches {
		value, ok := parseNumber(m[1])
		if !ok {
			continue
		}
		if strings.TrimSpace(m[2]) != "" {
			value *= 1000
		}
		amounts = append(amounts, value)
	}
	return amounts
}

func parseNumber(token string) (float64, bool) {
	token = strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(token)
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
