package models

import (
	"encoding/json"
	"time"
)

type Source string

const (
	SourceFranceTravail Source = "FRANCE_TRAVAIL"
	SourceWelcomeJungle Source = "WELCOME_JUNGLE"
)

// HomeCountry returns the country a posting from this source is assumed to
// be located in when the location field says nothing else.
func (s Source) HomeCountry() string {
	return "France"
}

// DefaultCurrency returns the currency assumed when a salary field carries
// no symbol or currency word.
func (s Source) DefaultCurrency() string {
	return "EUR"
}

type ContractType string

const (
	ContractCDI        ContractType = "CDI"
	ContractCDD        ContractType = "CDD"
	ContractStage      ContractType = "STAGE"
	ContractAlternance ContractType = "ALTERNANCE"
	ContractFreelance  ContractType = "FREELANCE"
	ContractInterim    ContractType = "INTERIM"
	ContractOther      ContractType = "OTHER"
)

type ExperienceLevel string

const (
	ExperienceJunior      ExperienceLevel = "JUNIOR"
	ExperienceSenior      ExperienceLevel = "SENIOR"
	ExperienceUnspecified ExperienceLevel = "UNSPECIFIED"
	ExperienceYearRange   ExperienceLevel = "YEAR_RANGE"
)

type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "HOURLY"
	PeriodDaily   SalaryPeriod = "DAILY"
	PeriodWeekly  SalaryPeriod = "WEEKLY"
	PeriodMonthly SalaryPeriod = "MONTHLY"
	PeriodAnnual  SalaryPeriod = "ANNUAL"
)

// SalaryInfo holds a parsed salary range. Min and Max are pointers because
// one bound may be missing; an absent salary is represented by a nil
// *SalaryInfo on the posting, never by a zeroed struct.
type SalaryInfo struct {
	Min      *float64     `json:"min"`
	Max      *float64     `json:"max"`
	Currency string       `json:"currency"`
	Period   SalaryPeriod `json:"period,omitempty"`
}

// LocationInfo is always present on a canonical posting. When IsRemote is
// true the city/department/region fields are empty and Country falls back
// to the source's home country.
type LocationInfo struct {
	RawLabel       string `json:"raw_label"`
	City           string `json:"city,omitempty"`
	DepartmentCode string `json:"department_code,omitempty"`
	Region         string `json:"region,omitempty"`
	Country        string `json:"country"`
	IsRemote       bool   `json:"is_remote"`
}

// ExperienceInfo carries the classified level plus the numeric year bounds
// when the raw text stated them.
type ExperienceInfo struct {
	Level    ExperienceLevel `json:"level"`
	MinYears *int            `json:"min_years,omitempty"`
	MaxYears *int            `json:"max_years,omitempty"`
}

// CanonicalPosting is the single output shape of the normalization engine.
// It is immutable once built; a re-run that produces different values for
// the same fingerprint results in an UPDATE decision, not a mutation.
type CanonicalPosting struct {
	Fingerprint     string          `json:"fingerprint"`
	SourceID        string          `json:"source_id"`
	SourceName      Source          `json:"source_name"`
	Title           string          `json:"title"`
	CompanyName     string          `json:"company_name"`
	ContractType    ContractType    `json:"contract_type"`
	PartTime        bool            `json:"part_time"`
	Location        LocationInfo    `json:"location"`
	Salary          *SalaryInfo     `json:"salary,omitempty"`
	Experience      ExperienceInfo  `json:"experience"`
	Technologies    []string        `json:"technologies"`
	PublicationDate *time.Time      `json:"publication_date,omitempty"`
	ProcessedAt     time.Time       `json:"processed_at"`
}

func (p CanonicalPosting) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *CanonicalPosting) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Equal reports field-by-field equality of everything the dedup decision
// tracks. ProcessedAt is deliberately excluded: it differs on every run and
// must not turn an idempotent re-run into an UPDATE.
func (p *CanonicalPosting) Equal(other *CanonicalPosting) bool {
	if other == nil {
		return false
	}
	if p.Fingerprint != other.Fingerprint ||
		p.SourceID != other.SourceID ||
		p.SourceName != other.SourceName ||
		p.Title != other.Title ||
		p.CompanyName != other.CompanyName ||
		p.ContractType != other.ContractType ||
		p.PartTime != other.PartTime ||
		p.Location != other.Location {
		return false
	}
	if !salaryEqual(p.Salary, other.Salary) {
		return false
	}
	if !experienceEqual(p.Experience, other.Experience) {
		return false
	}
	if !stringSlicesEqual(p.Technologies, other.Technologies) {
		return false
	}
	return timePtrEqual(p.PublicationDate, other.PublicationDate)
}

func salaryEqual(a, b *SalaryInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return floatPtrEqual(a.Min, b.Min) &&
		floatPtrEqual(a.Max, b.Max) &&
		a.Currency == b.Currency &&
		a.Period == b.Period
}

func experienceEqual(a, b ExperienceInfo) bool {
	return a.Level == b.Level &&
		intPtrEqual(a.MinYears, b.MinYears) &&
		intPtrEqual(a.MaxYears, b.MaxYears)
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }
