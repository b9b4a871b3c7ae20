// Package dedupe computes posting fingerprints and decides, against the
// sink's current state, whether a freshly normalized posting is new,
// changed or already stored. Re-running a collection on unchanged source
// data therefore produces zero writes.
package dedupe

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"jobmill/internal/cache"
	"jobmill/internal/models"
	"jobmill/internal/sink"
)

type Decision string

const (
	DecisionInsert Decision = "INSERT"
	DecisionUpdate Decision = "UPDATE"
	DecisionSkip   Decision = "SKIP"
)

type Deduper struct {
	sink   sink.Sink
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewDeduper builds a deduper over the given sink. The cache is optional:
// when present it serves fingerprint lookups before the sink is consulted,
// but it never changes a decision, only where the prior version was read
// from.
func NewDeduper(s sink.Sink, c cache.Cache, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		sink:   s,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Upsert stamps the posting's fingerprint, decides INSERT/UPDATE/SKIP and
// performs the write when one is needed. The UPDATE-versus-SKIP comparison
// is field-by-field over the full posting, never a timestamp heuristic.
func (d *Deduper) Upsert(ctx context.Context, posting *models.CanonicalPosting) (Decision, error) {
	posting.Fingerprint = Fingerprint(posting)

	existing, err := d.lookup(ctx, posting.Fingerprint)
	if err != nil {
		return "", err
	}

	if existing == nil {
		if err := d.write(ctx, posting); err != nil {
			return "", err
		}
		return DecisionInsert, nil
	}

	if existing.Equal(posting) {
		return DecisionSkip, nil
	}

	if err := d.write(ctx, posting); err != nil {
		return "", err
	}
	return DecisionUpdate, nil
}

func (d *Deduper) lookup(ctx context.Context, fingerprint string) (*models.CanonicalPosting, error) {
	if d.cache != nil {
		var cached models.CanonicalPosting
		err := d.cache.Get(ctx, cacheKey(fingerprint), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrNotFound) {
			d.logger.Warn("fingerprint cache read failed",
				zap.String("fingerprint", fingerprint),
				zap.Error(err))
		}
	}

	existing, err := d.sink.Lookup(ctx, fingerprint)
	if err != nil {
		return nil, err
	}

	// Read-through: a sink hit repopulates the cache so the next run of
	// this fingerprint is served without a sink round trip.
	if existing != nil && d.cache != nil {
		if err := d.cache.Set(ctx, cacheKey(fingerprint), *existing, d.ttl); err != nil {
			d.logger.Warn("fingerprint cache write failed",
				zap.String("fingerprint", fingerprint),
				zap.Error(err))
		}
	}

	return existing, nil
}

func (d *Deduper) write(ctx context.Context, posting *models.CanonicalPosting) error {
	if err := d.sink.Store(ctx, posting); err != nil {
		return err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, cacheKey(posting.Fingerprint), *posting, d.ttl); err != nil {
			d.logger.Warn("fingerprint cache write failed",
				zap.String("fingerprint", posting.Fingerprint),
				zap.Error(err))
		}
	}
	return nil
}

func cacheKey(fingerprint string) string {
	return "posting:" + fingerprint
}
