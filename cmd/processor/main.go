package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobmill/internal/batch"
	"jobmill/internal/cache"
	redisCache "jobmill/internal/cache/redis"
	"jobmill/internal/config"
	"jobmill/internal/database"
	"jobmill/internal/dedupe"
	"jobmill/internal/events"
	"jobmill/internal/normalize"
	"jobmill/internal/sink"
	"jobmill/internal/taxonomy"
	"jobmill/internal/telemetry"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newNATSConnection(cfg *config.Config) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("normalizer-service"),
		nats.RetryOnFailedConnect(true),
	}
	return nats.Connect(cfg.NATSURL, opts...)
}

func newClickHouseConnection(cfg *config.Config, logger *zap.Logger) (clickhouse.Conn, error) {
	db, err := database.New(context.Background(), database.Options{
		DSN:             cfg.ClickHouseDSN,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
		Username:        cfg.ClickHouseUsername,
		Password:        cfg.ClickHousePassword,
		Database:        cfg.ClickHouseDatabase,
	}, logger)
	if err != nil {
		return nil, err
	}
	return db.Conn(), nil
}

func newCache(cfg *config.Config) cache.Cache {
	return redisCache.New(cache.Options{
		DefaultTTL:    cfg.CacheTTL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
}

func newTaxonomy(cfg *config.Config) (*taxonomy.Tables, error) {
	return taxonomy.Load(cfg.TaxonomyPath)
}

func newSink(conn clickhouse.Conn, logger *zap.Logger) sink.Sink {
	return sink.NewClickHouse(conn, logger)
}

func newDeduper(s sink.Sink, c cache.Cache, cfg *config.Config, logger *zap.Logger) *dedupe.Deduper {
	return dedupe.NewDeduper(s, c, cfg.CacheTTL, logger)
}

func newDriver(normalizer *normalize.Normalizer, deduper *dedupe.Deduper, cfg *config.Config, logger *zap.Logger) *batch.Driver {
	return batch.NewDriver(normalizer, deduper, cfg.BatchWorkers, logger)
}

func registerTelemetry(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) error {
	if cfg.OTelCollectorURL == "" {
		return nil
	}

	shutdown, err := telemetry.InitTracer(context.Background(), "normalizer-service", cfg.OTelCollectorURL)
	if err != nil {
		return err
	}
	logger.Info("trace export enabled", zap.String("collector", cfg.OTelCollectorURL))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newNATSConnection,
			newClickHouseConnection,
			newCache,
			newTaxonomy,
			newSink,
			newDeduper,
			newDriver,
			normalize.NewNormalizer,
			events.NewHandler,
		),
		fx.Invoke(
			registerTelemetry,
			func(handler *events.Handler, lc fx.Lifecycle) error {
				return handler.RegisterSubscriptions(lc)
			},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
