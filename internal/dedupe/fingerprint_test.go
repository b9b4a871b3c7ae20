package dedupe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmill/internal/models"
)

func TestFingerprintStableForSourceID(t *testing.T) {
	a := &models.CanonicalPosting{
		SourceID:   "174ABCD",
		SourceName: models.SourceFranceTravail,
		Title:      "Développeur Python",
	}
	b := &models.CanonicalPosting{
		SourceID:   "174ABCD",
		SourceName: models.SourceFranceTravail,
		Title:      "Titre complètement différent",
	}

	// Identity comes from (source, id); other fields must not shift it.
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintDistinguishesSources(t *testing.T) {
	a := &models.CanonicalPosting{SourceID: "42", SourceName: models.SourceFranceTravail}
	b := &models.CanonicalPosting{SourceID: "42", SourceName: models.SourceWelcomeJungle}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintFallbackIsCaseInsensitive(t *testing.T) {
	published := time.Date(2024, 5, 28, 10, 0, 0, 0, time.UTC)
	a := &models.CanonicalPosting{
		SourceName:      models.SourceWelcomeJungle,
		Title:           "Data Engineer",
		CompanyName:     "ACME",
		Location:        models.LocationInfo{RawLabel: "Paris"},
		PublicationDate: &published,
	}
	b := &models.CanonicalPosting{
		SourceName:      models.SourceWelcomeJungle,
		Title:           "DATA ENGINEER",
		CompanyName:     "acme",
		Location:        models.LocationInfo{RawLabel: "PARIS"},
		PublicationDate: &published,
	}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintFallbackDependsOnDate(t *testing.T) {
	monday := time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 5, 28, 0, 0, 0, 0, time.UTC)

	a := &models.CanonicalPosting{
		SourceName:      models.SourceWelcomeJungle,
		Title:           "Data Engineer",
		CompanyName:     "ACME",
		PublicationDate: &monday,
	}
	b := &models.CanonicalPosting{
		SourceName:      models.SourceWelcomeJungle,
		Title:           "Data Engineer",
		CompanyName:     "ACME",
		PublicationDate: &tuesday,
	}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintIsValidUUID(t *testing.T) {
	p := &models.CanonicalPosting{SourceID: "X", SourceName: models.SourceFranceTravail}
	parsed, err := uuid.Parse(Fingerprint(p))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}
