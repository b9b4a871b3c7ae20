package batch

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobmill/internal/dedupe"
	"jobmill/internal/errors"
	"jobmill/internal/models"
	"jobmill/internal/normalize"
	"jobmill/internal/sink"
	"jobmill/internal/taxonomy"
)

func newTestDriver(t *testing.T, store *sink.Memory) *Driver {
	t.Helper()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	normalizer := normalize.NewNormalizer(taxonomy.Default(), zap.NewNop()).
		WithClock(func() time.Time { return fixed })
	deduper := dedupe.NewDeduper(store, nil, 0, zap.NewNop())
	return NewDriver(normalizer, deduper, 4, zap.NewNop())
}

func franceTravailRecord(t *testing.T, id, title string) models.RawPosting {
	t.Helper()
	p := models.FranceTravailPosting{ID: id, Intitule: title}
	p.Entreprise.Nom = "ACME"
	payload, err := json.Marshal(p)
	require.NoError(t, err)
	return models.RawPosting{Source: models.SourceFranceTravail, Payload: payload}
}

func TestRunInsertsDistinctRecords(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	batch := []models.RawPosting{
		franceTravailRecord(t, "A", "Développeur Python"),
		franceTravailRecord(t, "B", "Data Engineer"),
		franceTravailRecord(t, "C", "Chef de projet"),
	}

	stats, rejections := driver.Run(context.Background(), batch)
	assert.Empty(t, rejections)
	assert.Equal(t, int32(3), stats.Processed)
	assert.Equal(t, int32(3), stats.Inserted)
	assert.Equal(t, int32(0), stats.Rejected)
	assert.Equal(t, 3, store.Len())
}

func TestRunRerunProducesZeroWrites(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	batch := []models.RawPosting{
		franceTravailRecord(t, "A", "Développeur Python"),
		franceTravailRecord(t, "B", "Data Engineer"),
	}

	first, _ := driver.Run(context.Background(), batch)
	assert.Equal(t, int32(2), first.Inserted)
	writesAfterFirstRun := store.Writes()

	second, _ := driver.Run(context.Background(), batch)
	assert.Equal(t, int32(0), second.Inserted)
	assert.Equal(t, int32(2), second.Skipped)
	assert.Equal(t, writesAfterFirstRun, store.Writes())
}

func TestRunBadRecordDoesNotAbortBatch(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	batch := []models.RawPosting{
		franceTravailRecord(t, "A", "Développeur Python"),
		{Source: models.SourceFranceTravail, Payload: []byte(`{"intitule": 42`)},
		franceTravailRecord(t, "B", "Data Engineer"),
	}

	stats, rejections := driver.Run(context.Background(), batch)
	assert.Equal(t, int32(3), stats.Processed)
	assert.Equal(t, int32(2), stats.Inserted)
	assert.Equal(t, int32(1), stats.Rejected)

	require.Len(t, rejections, 1)
	assert.Equal(t, models.SourceFranceTravail, rejections[0].SourceName)
	assert.Equal(t, errors.ErrTypeMalformedRecord, rejections[0].Reason)
	assert.Equal(t, StageParse, rejections[0].Stage)
}

func TestRunMissingIdentityRejection(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	payload, err := json.Marshal(models.FranceTravailPosting{Description: "rien d'autre"})
	require.NoError(t, err)

	stats, rejections := driver.Run(context.Background(), []models.RawPosting{
		{Source: models.SourceFranceTravail, Payload: payload},
	})
	assert.Equal(t, int32(1), stats.Rejected)
	require.Len(t, rejections, 1)
	assert.Equal(t, errors.ErrTypeMissingIdentity, rejections[0].Reason)
	assert.Equal(t, StageNormalize, rejections[0].Stage)
	assert.Equal(t, 0, store.Len())
}

func TestRunRejectionCarriesRawIdentity(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	_, rejections := driver.Run(context.Background(), []models.RawPosting{
		{Source: "MYSTERY_BOARD", Payload: []byte(`{"id": "ref-1"}`)},
	})
	require.Len(t, rejections, 1)
	assert.Equal(t, "ref-1", rejections[0].SourceRef)
}

func TestRunCountsTechnologyTags(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	p := models.FranceTravailPosting{ID: "T1", Intitule: "Data Engineer"}
	p.Description = "Stack python, spark et kafka."
	payload, err := json.Marshal(p)
	require.NoError(t, err)

	stats, _ := driver.Run(context.Background(), []models.RawPosting{
		{Source: models.SourceFranceTravail, Payload: payload},
	})
	assert.Equal(t, int32(3), stats.TechnologyTags)
}

func TestRunEmptyBatch(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	stats, rejections := driver.Run(context.Background(), nil)
	assert.Empty(t, rejections)
	assert.Equal(t, int32(0), stats.Processed)
}

func TestRunCancelledContextStopsFeeding(t *testing.T) {
	store := sink.NewMemory()
	driver := newTestDriver(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := make([]models.RawPosting, 100)
	for i := range batch {
		batch[i] = franceTravailRecord(t, "X", "Titre")
	}

	stats, _ := driver.Run(ctx, batch)
	assert.Less(t, stats.Processed, int32(100))
}
