package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobmill/internal/batch"
	"jobmill/internal/models"
	"jobmill/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobmill/events")

const (
	// RawBatchSubject carries JSON arrays of raw postings, one message per
	// collection batch.
	RawBatchSubject = "jobs.raw.batch"

	queueGroup = "normalizer-service"
)

type Handler struct {
	logger *zap.Logger
	nc     *nats.Conn
	driver *batch.Driver
	sub    *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, driver *batch.Driver) *Handler {
	return &Handler{
		logger: logger,
		nc:     nc,
		driver: driver,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(RawBatchSubject, queueGroup, h.handleRawBatch)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", RawBatchSubject, err)
	}

	h.sub = sub
	h.logger.Info("registered NATS subscriptions",
		zap.String("subject", RawBatchSubject))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Unsubscribe()
		},
	})

	return nil
}

func (h *Handler) handleRawBatch(msg *nats.Msg) {
	ctx, span := tracer.Start(context.Background(), "handleRawBatch")
	defer span.End()

	var rawBatch []models.RawPosting
	if err := json.Unmarshal(msg.Data, &rawBatch); err != nil {
		// A single raw posting is accepted too, for sources that publish
		// record by record.
		var single models.RawPosting
		if err := json.Unmarshal(msg.Data, &single); err != nil {
			span.RecordError(err)
			h.logger.Error("undecodable batch message",
				zap.String("subject", msg.Subject),
				zap.Error(err))
			return
		}
		rawBatch = []models.RawPosting{single}
	}

	stats, rejections := h.driver.Run(ctx, rawBatch)

	span.SetAttributes(
		telemetry.Int("batch.size", len(rawBatch)),
		telemetry.Int("batch.inserted", int(stats.Inserted)),
		telemetry.Int("batch.rejected", int(stats.Rejected)),
	)

	for _, rejection := range rejections {
		h.logger.Warn("posting rejected",
			zap.String("source", string(rejection.SourceName)),
			zap.String("source_ref", rejection.SourceRef),
			zap.String("reason", string(rejection.Reason)),
			zap.String("stage", string(rejection.Stage)))
	}
}
