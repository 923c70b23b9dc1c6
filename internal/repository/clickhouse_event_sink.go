package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"SecureBank/internal/domain/models"
	pkgch "SecureBank/pkg/clickhouse"
	"SecureBank/pkg/config"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ClickHouseSink inserts one row per event.
type ClickHouseSink struct {
	db    execer
	table string
	close func() error
}

func NewClickHouseSink(c *pkgch.Client, table string) *ClickHouseSink {
	return &ClickHouseSink{db: c.DB(), table: table, close: c.Close}
}

// PredictionEventsSchema returns the DDL for the events table.
func PredictionEventsSchema(table string) []string {
	return []string{fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            id              String,
            ts              DateTime64(3, 'UTC'),
            prediction      LowCardinality(String),
            probability_yes Float64,
            latency_ms      UInt32,
            age             Int32,
            job             LowCardinality(String),
            balance         Int64,
            duration        Int32,
            poutcome        LowCardinality(String),
            input           String
        )
        ENGINE = MergeTree
        PARTITION BY toYYYYMM(ts)
        ORDER BY (ts, id)
    `, table)}
}

func (s *ClickHouseSink) Publish(ctx context.Context, ev models.PredictionEvent) error {
	input, err := json.Marshal(ev.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	q := fmt.Sprintf("INSERT INTO %s (id, ts, prediction, probability_yes, latency_ms, age, job, balance, duration, poutcome, input) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	_, err = s.db.ExecContext(ctx, q,
		ev.ID,
		ev.Time,
		ev.Prediction,
		ev.ProbabilityYes,
		uint32(ev.LatencyMs),
		int32(ev.Input.Age),
		ev.Input.Job,
		int64(ev.Input.Balance),
		int32(ev.Input.Duration),
		ev.Input.POutcome,
		string(input),
	)
	if err != nil {
		return fmt.Errorf("insert prediction event: %w", err)
	}
	return nil
}

func (s *ClickHouseSink) Name() string { return config.SinkClickHouse }

func (s *ClickHouseSink) Close() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}
