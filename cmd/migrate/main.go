package main

import (
	"context"
	"log"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"jobmill/internal/config"
	"jobmill/internal/schema"
	"jobmill/internal/schema/migrations"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.ClickHouseDSN},
		Auth: clickhouse.Auth{
			Database: cfg.ClickHouseDatabase,
			Username: cfg.ClickHouseUsername,
			Password: cfg.ClickHousePassword,
		},
	})
	if err != nil {
		logger.Fatal("Failed to connect to ClickHouse", zap.Error(err))
	}
	defer conn.Close()

	migrator := schema.NewMigrator(conn, logger)
	if err := migrator.Run(context.Background(), migrations.All()); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	logger.Info("All migrations completed successfully")
}
