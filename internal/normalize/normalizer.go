// Package normalize turns one raw posting into its canonical form. The
// raw record is a tagged variant discriminated by source name; each known
// source has a dedicated parser feeding the common assembly path. The
// normalizer is pure apart from the injected clock: it never writes to
// storage, and re-running it on the same input yields the same output.
package normalize

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobmill/internal/errors"
	"jobmill/internal/extract"
	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

// dateFormats covers the timestamp shapes both sources emit.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

type Normalizer struct {
	tables   *taxonomy.Tables
	detector *extract.TechnologyDetector
	logger   *zap.Logger
	now      func() time.Time
}

func NewNormalizer(tables *taxonomy.Tables, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		tables:   tables,
		detector: extract.NewTechnologyDetector(tables.Technologies),
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the processing-time source. Tests use a fixed clock so
// normalizing the same raw posting twice is byte-for-byte identical.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// fields is the source-independent intermediate form the per-source
// parsers produce before extraction runs.
type fields struct {
	sourceID    string
	title       string
	company     string
	contractRaw string
	durationRaw string
	locationRaw string
	postalCode  string
	commune     string
	salaryRaw   string
	expRaw      string
	description string
	publishedAt string
}

// Normalize converts one raw posting into a CanonicalPosting, or rejects
// it with a DomainError (MALFORMED_RECORD, MISSING_IDENTITY). Individual
// extractor fallbacks are not errors: they resolve to the documented
// sentinels and processing continues.
func (n *Normalizer) Normalize(raw models.RawPosting) (*models.CanonicalPosting, error) {
	var (
		f   fields
		err error
	)
	switch raw.Source {
	case models.SourceFranceTravail:
		f, err = parseFranceTravail(raw.Payload)
	case models.SourceWelcomeJungle:
		f, err = parseWelcomeJungle(raw.Payload)
	default:
		return nil, errors.MalformedRecord("unknown source "+string(raw.Source), nil)
	}
	if err != nil {
		return nil, errors.MalformedRecord("unparseable payload", err)
	}

	f.title = extract.CleanText(f.title)
	f.company = extract.CleanText(f.company)

	if f.sourceID == "" && f.title == "" && f.company == "" {
		return nil, errors.MissingIdentity("no source id and no title/company fallback", nil)
	}

	contractType, partTime := extract.Contract(
		strings.TrimSpace(f.contractRaw+" "+f.durationRaw), f.title, n.tables)

	posting := &models.CanonicalPosting{
		SourceID:     f.sourceID,
		SourceName:   raw.Source,
		Title:        f.title,
		CompanyName:  f.company,
		ContractType: contractType,
		PartTime:     partTime,
		Location:     extract.LocationWithHints(f.locationRaw, f.postalCode, f.commune, raw.Source, n.tables),
		Salary:       extract.Salary(f.salaryRaw, raw.Source, n.tables),
		Experience:   extract.Experience(f.expRaw, n.tables),
		Technologies: n.detector.Detect(f.title + " " + extract.CleanText(f.description)),
		ProcessedAt:  n.now().UTC(),
	}

	if f.publishedAt != "" {
		if published, ok := parseDate(f.publishedAt); ok {
			posting.PublicationDate = &published
		} else {
			n.logger.Debug("unparseable publication date",
				zap.String("source_id", f.sourceID),
				zap.String("value", f.publishedAt))
		}
	}

	return posting, nil
}

func parseFranceTravail(payload []byte) (fields, error) {
	var p models.FranceTravailPosting
	if err := json.Unmarshal(payload, &p); err != nil {
		return fields{}, err
	}

	salary := p.Salaire.Libelle
	if salary == "" {
		salary = p.Salaire.Complement
	}

	return fields{
		sourceID:    p.ID,
		title:       p.Intitule,
		company:     p.Entreprise.Nom,
		contractRaw: strings.TrimSpace(p.TypeContrat + " " + p.TypeContratLib),
		durationRaw: p.DureeTravailLib,
		locationRaw: p.LieuTravail.Libelle,
		postalCode:  p.LieuTravail.CodePostal,
		commune:     p.LieuTravail.Commune,
		salaryRaw:   salary,
		expRaw:      p.ExperienceLib,
		description: p.Description,
		publishedAt: p.DateCreation,
	}, nil
}

func parseWelcomeJungle(payload []byte) (fields, error) {
	var p models.WelcomeJunglePosting
	if err := json.Unmarshal(payload, &p); err != nil {
		return fields{}, err
	}

	return fields{
		sourceID:    p.URL,
		title:       p.Title,
		company:     p.Company,
		contractRaw: p.ContractType,
		locationRaw: p.Location,
		salaryRaw:   p.Salary,
		expRaw:      p.Experience,
		description: p.Description,
		publishedAt: p.PublishedAt,
	}, nil
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
