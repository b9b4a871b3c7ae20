package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmill/internal/models"
	"jobmill/internal/taxonomy"
)

func TestLocationEmptyLabelIsRemote(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("", models.SourceFranceTravail, tables)
	assert.True(t, info.IsRemote)
	assert.Empty(t, info.City)
	assert.Empty(t, info.Region)
	assert.Equal(t, "France", info.Country)
}

func TestLocationRemoteVocabulary(t *testing.T) {
	tables := taxonomy.Default()

	for _, label := range []string{"Télétravail", "Full remote", "à distance"} {
		info := Location(label, models.SourceWelcomeJungle, tables)
		assert.True(t, info.IsRemote, label)
		assert.Empty(t, info.City, label)
	}
}

func TestLocationDepartmentCodedLabel(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("75 - PARIS 15", models.SourceFranceTravail, tables)
	assert.False(t, info.IsRemote)
	assert.Equal(t, "75", info.DepartmentCode)
	assert.Equal(t, "Paris 15", info.City)
	assert.Equal(t, "Île-de-France", info.Region)
	assert.Equal(t, "France", info.Country)
}

func TestLocationSingleDigitDepartmentPadded(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("1 - Bourg-en-Bresse", models.SourceFranceTravail, tables)
	assert.Equal(t, "01", info.DepartmentCode)
	assert.Equal(t, "Auvergne-Rhône-Alpes", info.Region)
}

func TestLocationCorsicaAndOverseas(t *testing.T) {
	tables := taxonomy.Default()

	ajaccio := Location("2A - AJACCIO", models.SourceFranceTravail, tables)
	assert.Equal(t, "2A", ajaccio.DepartmentCode)
	assert.Equal(t, "Corse", ajaccio.Region)
	assert.Equal(t, "Ajaccio", ajaccio.City)

	reunion := Location("974 - Saint-Denis", models.SourceFranceTravail, tables)
	assert.Equal(t, "974", reunion.DepartmentCode)
	assert.Equal(t, "La Réunion", reunion.Region)
}

func TestLocationCityCaseVariantsFold(t *testing.T) {
	tables := taxonomy.Default()

	a := Location("69 - LYON", models.SourceFranceTravail, tables)
	b := Location("69 - lyon", models.SourceFranceTravail, tables)
	c := Location("69 - Lyon", models.SourceFranceTravail, tables)
	assert.Equal(t, a.City, b.City)
	assert.Equal(t, b.City, c.City)
	assert.Equal(t, "Lyon", a.City)
}

func TestLocationForeignCountry(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("Italie", models.SourceFranceTravail, tables)
	assert.Equal(t, "Italie", info.Country)
	assert.Empty(t, info.City)
	assert.Empty(t, info.Region)
	assert.False(t, info.IsRemote)
}

func TestLocationCountryVariantNormalized(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("Etats-Unis", models.SourceFranceTravail, tables)
	assert.Equal(t, "États-Unis", info.Country)
}

func TestLocationParentheticalStripped(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("Suisse (Frontalier)", models.SourceFranceTravail, tables)
	assert.Equal(t, "Suisse", info.Country)
	assert.Empty(t, info.City)
}

func TestLocationUnresolvableLabelKeptAsCity(t *testing.T) {
	tables := taxonomy.Default()

	info := Location("Quartier de La Défense", models.SourceWelcomeJungle, tables)
	assert.False(t, info.IsRemote)
	assert.Equal(t, "Quartier De La Défense", info.City)
	assert.Empty(t, info.DepartmentCode)
	assert.Equal(t, "France", info.Country)
}

func TestLocationHintsFillMissingParts(t *testing.T) {
	tables := taxonomy.Default()

	// A national offer: the label gives no city or department, the
	// structured parts do.
	info := LocationWithHints("France", "20000", "Ajaccio", models.SourceFranceTravail, tables)
	assert.Equal(t, "France", info.Country)
	assert.Equal(t, "2B", info.DepartmentCode)
	assert.Equal(t, "Corse", info.Region)
	assert.Equal(t, "Ajaccio", info.City)
}

func TestLocationHintsNeverOverrideLabel(t *testing.T) {
	tables := taxonomy.Default()

	info := LocationWithHints("75 - PARIS 15", "69001", "LYON 1ER", models.SourceFranceTravail, tables)
	assert.Equal(t, "75", info.DepartmentCode)
	assert.Equal(t, "Paris 15", info.City)
	assert.Equal(t, "Île-de-France", info.Region)
}

func TestLocationHintsIgnoreInseeCommuneCode(t *testing.T) {
	tables := taxonomy.Default()

	info := LocationWithHints("France", "75015", "75115", models.SourceFranceTravail, tables)
	assert.Equal(t, "75", info.DepartmentCode)
	assert.Empty(t, info.City)
}

func TestLocationEmptyHintsMatchPlainLocation(t *testing.T) {
	tables := taxonomy.Default()

	for _, label := range []string{"", "75 - PARIS 15", "Italie", "Lyon"} {
		assert.Equal(t,
			Location(label, models.SourceFranceTravail, tables),
			LocationWithHints(label, "", "", models.SourceFranceTravail, tables),
			label)
	}
}

func TestDepartmentFromPostalCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"75015", "75"},
		{"01000", "01"},
		{"20000", "2B"},
		{"20090", "2B"},
		{"20200", "2A"},
		{"20600", "2A"},
		{"20620", "2B"},
		{"97400", "974"},
		{"98000", "980"},
		{"1234", ""},
		{"ABCDE", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, departmentFromPostalCode(tt.code), tt.code)
	}
}

func TestLocationIsTotal(t *testing.T) {
	tables := taxonomy.Default()

	for _, label := range []string{"", "   ", "???", "75010", "名古屋", "<b>Paris</b>"} {
		info := Location(label, models.SourceFranceTravail, tables)
		assert.NotEmpty(t, info.Country, label)
	}
}
