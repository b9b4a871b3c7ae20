package migrations

import "jobmill/internal/schema"

// The fingerprint is the upsert key: ReplacingMergeTree keyed on it keeps
// exactly one live row per logical posting, the latest processed version
// winning at merge time.
var CreatePostingsTable = schema.Migration{
	Version:     1,
	Description: "Create postings table",
	Up: `
		CREATE TABLE IF NOT EXISTS postings (
			fingerprint UUID,
			source_id String,
			source_name LowCardinality(String),
			title String,
			company_name String,
			contract_type LowCardinality(String),
			part_time Bool,
			location_raw String,
			location_city String,
			location_department LowCardinality(String),
			location_region LowCardinality(String),
			location_country LowCardinality(String),
			location_remote Bool,
			salary_min Nullable(Float64),
			salary_max Nullable(Float64),
			salary_currency LowCardinality(String),
			salary_period LowCardinality(String),
			experience_level LowCardinality(String),
			experience_min_years Nullable(Int32),
			experience_max_years Nullable(Int32),
			technologies Array(String),
			publication_date Nullable(DateTime),
			processed_at DateTime,
			PRIMARY KEY (fingerprint)
		) ENGINE = ReplacingMergeTree(processed_at)
		ORDER BY (fingerprint)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS postings`,
}

// All returns the full migration list in apply order.
func All() []schema.Migration {
	return []schema.Migration{
		CreatePostingsTable,
	}
}
