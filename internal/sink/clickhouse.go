package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"jobmill/internal/models"
)

// ClickHouse stores canonical postings in a ReplacingMergeTree keyed by
// fingerprint: writing the same fingerprint again supersedes the previous
// row, which gives the conditional-upsert discipline the dedup decision
// relies on without in-process locking.
type ClickHouse struct {
	conn   clickhouse.Conn
	logger *zap.Logger
}

func NewClickHouse(conn clickhouse.Conn, logger *zap.Logger) *ClickHouse {
	return &ClickHouse{conn: conn, logger: logger}
}

func (s *ClickHouse) Lookup(ctx context.Context, fingerprint string) (*models.CanonicalPosting, error) {
	query := `
		SELECT
			fingerprint, source_id, source_name, title, company_name,
			contract_type, part_time,
			location_raw, location_city, location_department, location_region,
			location_country, location_remote,
			salary_min, salary_max, salary_currency, salary_period,
			experience_level, experience_min_years, experience_max_years,
			technologies, publication_date, processed_at
		FROM postings FINAL
		WHERE fingerprint = ?
		LIMIT 1
	`

	row := s.conn.QueryRow(ctx, query, fingerprint)

	var (
		p              models.CanonicalPosting
		sourceName     string
		contractType   string
		expLevel       string
		salaryMin      *float64
		salaryMax      *float64
		salaryCurrency string
		salaryPeriod   string
		expMinYears    *int32
		expMaxYears    *int32
	)
	// The experience bounds are Nullable(Int32) columns; the native scan
	// is width-strict, so they go through *int32 and get widened after.
	err := row.Scan(
		&p.Fingerprint, &p.SourceID, &sourceName, &p.Title, &p.CompanyName,
		&contractType, &p.PartTime,
		&p.Location.RawLabel, &p.Location.City, &p.Location.DepartmentCode,
		&p.Location.Region, &p.Location.Country, &p.Location.IsRemote,
		&salaryMin, &salaryMax, &salaryCurrency, &salaryPeriod,
		&expLevel, &expMinYears, &expMaxYears,
		&p.Technologies, &p.PublicationDate, &p.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup posting %s: %w", fingerprint, err)
	}

	p.SourceName = models.Source(sourceName)
	p.ContractType = models.ContractType(contractType)
	p.Experience.Level = models.ExperienceLevel(expLevel)
	if expMinYears != nil {
		p.Experience.MinYears = models.Int(int(*expMinYears))
	}
	if expMaxYears != nil {
		p.Experience.MaxYears = models.Int(int(*expMaxYears))
	}
	if salaryMin != nil || salaryMax != nil {
		p.Salary = &models.SalaryInfo{
			Min:      salaryMin,
			Max:      salaryMax,
			Currency: salaryCurrency,
			Period:   models.SalaryPeriod(salaryPeriod),
		}
	}
	return &p, nil
}

func (s *ClickHouse) Store(ctx context.Context, posting *models.CanonicalPosting) error {
	query := `
		INSERT INTO postings (
			fingerprint, source_id, source_name, title, company_name,
			contract_type, part_time,
			location_raw, location_city, location_department, location_region,
			location_country, location_remote,
			salary_min, salary_max, salary_currency, salary_period,
			experience_level, experience_min_years, experience_max_years,
			technologies, publication_date, processed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var salaryMin, salaryMax *float64
	var salaryCurrency, salaryPeriod string
	if posting.Salary != nil {
		salaryMin = posting.Salary.Min
		salaryMax = posting.Salary.Max
		salaryCurrency = posting.Salary.Currency
		salaryPeriod = string(posting.Salary.Period)
	}

	expMinYears := narrowYears(posting.Experience.MinYears)
	expMaxYears := narrowYears(posting.Experience.MaxYears)

	var published *time.Time
	if posting.PublicationDate != nil {
		published = posting.PublicationDate
	}

	if err := s.conn.Exec(ctx, query,
		posting.Fingerprint,
		posting.SourceID,
		string(posting.SourceName),
		posting.Title,
		posting.CompanyName,
		string(posting.ContractType),
		posting.PartTime,
		posting.Location.RawLabel,
		posting.Location.City,
		posting.Location.DepartmentCode,
		posting.Location.Region,
		posting.Location.Country,
		posting.Location.IsRemote,
		salaryMin,
		salaryMax,
		salaryCurrency,
		salaryPeriod,
		string(posting.Experience.Level),
		expMinYears,
		expMaxYears,
		posting.Technologies,
		published,
		posting.ProcessedAt,
	); err != nil {
		return fmt.Errorf("store posting %s: %w", posting.Fingerprint, err)
	}

	return nil
}

func narrowYears(years *int) *int32 {
	if years == nil {
		return nil
	}
	v := int32(*years)
	return &v
}
