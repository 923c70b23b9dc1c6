package repository

import (
	"context"

	"SecureBank/internal/domain/models"
	"SecureBank/pkg/config"
	pkgkafka "SecureBank/pkg/kafka"
)

// KafkaSink publishes each event as JSON keyed by the predicted outcome, so
// all events of one outcome land on the same partition.
type KafkaSink struct {
	producer *pkgkafka.Producer
}

func NewKafkaSink(p *pkgkafka.Producer) *KafkaSink {
	return &KafkaSink{producer: p}
}

func (s *KafkaSink) Publish(ctx context.Context, ev models.PredictionEvent) error {
	return s.producer.Publish(ctx, []byte(ev.Prediction), ev)
}

func (s *KafkaSink) Name() string { return config.SinkKafka }

func (s *KafkaSink) Close() error { return s.producer.Close() }
