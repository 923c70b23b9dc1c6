package repository

import (
	"context"
	"fmt"

	"SecureBank/internal/domain/models"
	domrepo "SecureBank/internal/domain/repository"
	pkgch "SecureBank/pkg/clickhouse"
	"SecureBank/pkg/config"
	pkgkafka "SecureBank/pkg/kafka"
	applogger "SecureBank/pkg/logger"
)

// NewEventSink builds the prediction event sink selected by events.sink.
func NewEventSink(ctx context.Context, cfg *config.Config, l *applogger.Logger) (domrepo.EventSink, error) {
	switch cfg.Events.Sink {
	case config.SinkKafka:
		k := cfg.Events.Kafka
		p, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(k.Brokers),
			pkgkafka.WithTopic(k.Topic),
			pkgkafka.WithRequiredAcks(k.RequiredAcks),
			pkgkafka.WithCompression(k.Compression),
			pkgkafka.WithMaxAttempts(k.MaxAttempts),
			pkgkafka.WithBatchTimeout(k.Linger),
			pkgkafka.WithWriteTimeout(k.WriteTimeout),
			pkgkafka.WithAsync(k.Async),
		)
		if err != nil {
			return nil, fmt.Errorf("kafka sink: %w", err)
		}
		l.Info("prediction events go to kafka",
			applogger.Strings("brokers", k.Brokers),
			applogger.String("topic", k.Topic),
		)
		return NewKafkaSink(p), nil

	case config.SinkClickHouse:
		c := cfg.Events.ClickHouse
		client, err := pkgch.NewClient(ctx,
			pkgch.WithHost(c.Host),
			pkgch.WithPort(c.Port),
			pkgch.WithDatabase(c.Database),
			pkgch.WithCredentials(c.User, c.Password),
			pkgch.WithTimeouts(c.DialTimeout, c.ReadTimeout, c.WriteTimeout),
			pkgch.WithHTTP(c.UseHTTP),
			pkgch.WithAsyncInsert(c.AsyncInsert, false),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse sink: %w", err)
		}
		if err := client.InitSchema(ctx, PredictionEventsSchema(c.Table)); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse sink: %w", err)
		}
		l.Info("prediction events go to clickhouse",
			applogger.String("host", c.Host),
			applogger.String("table", c.Table),
		)
		return NewClickHouseSink(client, c.Table), nil

	default:
		return NoopSink{}, nil
	}
}

// NoopSink drops every event.
type NoopSink struct{}

func (NoopSink) Publish(context.Context, models.PredictionEvent) error { return nil }
func (NoopSink) Name() string                                          { return config.SinkNone }
func (NoopSink) Close() error                                          { return nil }
