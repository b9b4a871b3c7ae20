package dedupe

import (
	"strings"

	"github.com/google/uuid"

	"jobmill/internal/models"
)

var namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Fingerprint derives the stable identity key for a canonical posting.
// When the source supplied an id the key is a UUIDv5 over (source, id);
// otherwise it falls back to a normalized hash of title, company, location
// label and publication date, which is how the same scraped posting is
// recognized across collection runs.
func Fingerprint(p *models.CanonicalPosting) string {
	if p.SourceID != "" {
		return uuid.NewSHA1(namespace, []byte(string(p.SourceName)+"|"+p.SourceID)).String()
	}

	date := ""
	if p.PublicationDate != nil {
		date = p.PublicationDate.Format("2006-01-02")
	}
	key := strings.ToLower(strings.Join([]string{
		string(p.SourceName),
		p.Title,
		p.CompanyName,
		p.Location.RawLabel,
		date,
	}, "|"))
	return uuid.NewSHA1(namespace, []byte(key)).String()
}
