// Package batch runs the normalization engine over one batch of raw
// postings. Records are independent, so the driver fans them out across a
// bounded worker pool; the only serialized step is the per-fingerprint
// upsert, which the sink handles. One bad record never aborts the batch.
package batch

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"jobmill/internal/dedupe"
	"jobmill/internal/errors"
	"jobmill/internal/models"
	"jobmill/internal/normalize"
	"jobmill/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobmill/batch")

const defaultWorkers = 8

// Stage names the pipeline step a rejection occurred at.
type Stage string

const (
	StageParse     Stage = "parse"
	StageNormalize Stage = "normalize"
	StageUpsert    Stage = "upsert"
)

// Rejection is the per-record entry of the rejection contract: the raw
// identity when determinable, the reason, and the stage that refused it.
type Rejection struct {
	SourceName models.Source
	SourceRef  string
	Reason     errors.ErrorType
	Stage      Stage
}

// Stats summarizes one batch run.
type Stats struct {
	Processed      int32
	Inserted       int32
	Updated        int32
	Skipped        int32
	Rejected       int32
	TechnologyTags int32
}

type Driver struct {
	normalizer *normalize.Normalizer
	deduper    *dedupe.Deduper
	logger     *zap.Logger
	workers    int
}

func NewDriver(normalizer *normalize.Normalizer, deduper *dedupe.Deduper, workers int, logger *zap.Logger) *Driver {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Driver{
		normalizer: normalizer,
		deduper:    deduper,
		logger:     logger,
		workers:    workers,
	}
}

// Run normalizes and upserts every record of the batch, collecting
// per-record outcomes into stats and the rejection list. Persistence is
// delegated to the deduper's sink; the driver holds no locks beyond the
// rejection collector.
func (d *Driver) Run(ctx context.Context, batch []models.RawPosting) (*Stats, []Rejection) {
	ctx, span := tracer.Start(ctx, "Driver.Run")
	defer span.End()

	stats := &Stats{}
	var (
		mu         sync.Mutex
		rejections []Rejection
	)
	reject := func(r Rejection) {
		atomic.AddInt32(&stats.Rejected, 1)
		mu.Lock()
		rejections = append(rejections, r)
		mu.Unlock()
	}

	records := make(chan models.RawPosting)
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for raw := range records {
				d.processRecord(ctx, raw, stats, reject)
			}
		}()
	}

feed:
	for _, raw := range batch {
		select {
		case <-ctx.Done():
			break feed
		case records <- raw:
		}
	}
	close(records)
	wg.Wait()

	span.SetAttributes(
		telemetry.Int("batch.size", len(batch)),
		telemetry.Int("batch.rejected", int(stats.Rejected)),
	)
	d.logger.Info("batch completed",
		zap.Int("size", len(batch)),
		zap.Int32("inserted", stats.Inserted),
		zap.Int32("updated", stats.Updated),
		zap.Int32("skipped", stats.Skipped),
		zap.Int32("rejected", stats.Rejected))

	return stats, rejections
}

func (d *Driver) processRecord(ctx context.Context, raw models.RawPosting, stats *Stats, reject func(Rejection)) {
	atomic.AddInt32(&stats.Processed, 1)

	posting, err := d.normalizer.Normalize(raw)
	if err != nil {
		reject(Rejection{
			SourceName: raw.Source,
			SourceRef:  rawIdentity(raw),
			Reason:     errors.TypeOf(err),
			Stage:      rejectionStage(err),
		})
		d.logger.Warn("record rejected",
			zap.String("source", string(raw.Source)),
			zap.Error(err))
		return
	}
	atomic.AddInt32(&stats.TechnologyTags, int32(len(posting.Technologies)))

	decision, err := d.deduper.Upsert(ctx, posting)
	if err != nil {
		reject(Rejection{
			SourceName: raw.Source,
			SourceRef:  posting.SourceID,
			Reason:     errors.TypeOf(err),
			Stage:      StageUpsert,
		})
		d.logger.Error("upsert failed",
			zap.String("fingerprint", posting.Fingerprint),
			zap.Error(err))
		return
	}

	switch decision {
	case dedupe.DecisionInsert:
		atomic.AddInt32(&stats.Inserted, 1)
	case dedupe.DecisionUpdate:
		atomic.AddInt32(&stats.Updated, 1)
	case dedupe.DecisionSkip:
		atomic.AddInt32(&stats.Skipped, 1)
	}
}

func rejectionStage(err error) Stage {
	if errors.TypeOf(err) == errors.ErrTypeMalformedRecord {
		return StageParse
	}
	return StageNormalize
}

// rawIdentity makes a best effort at naming a record that failed before a
// canonical id existed.
func rawIdentity(raw models.RawPosting) string {
	if len(raw.Payload) == 0 {
		return ""
	}
	type probe struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	var p probe
	if err := json.Unmarshal(raw.Payload, &p); err != nil {
		return ""
	}
	if p.ID != "" {
		return p.ID
	}
	return p.URL
}
