package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink publishes audit events as JSON records, keyed by server ID so
// events for one server stay ordered within a partition.
type KafkaSink struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaSink connects to brokers. The connection is lazy; EnsureTopic is the
// first call that actually talks to the cluster.
func NewKafkaSink(brokers []string, topic string, logger *slog.Logger) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaSink{client: client, topic: topic, logger: logger}, nil
}

// EnsureTopic creates the audit topic with broker defaults if it does not
// already exist.
func (s *KafkaSink) EnsureTopic(ctx context.Context) error {
	adm := kadm.NewClient(s.client)
	_, err := adm.CreateTopic(ctx, -1, -1, nil, s.topic)
	switch {
	case errors.Is(err, kerr.TopicAlreadyExists):
		s.logger.DebugContext(ctx, "audit topic already exists", "topic", s.topic)
	case err != nil:
		return fmt.Errorf("create topic %s: %w", s.topic, err)
	default:
		s.logger.InfoContext(ctx, "created audit topic", "topic", s.topic)
	}
	return nil
}

func (s *KafkaSink) Write(ctx context.Context, event Event) error {
	event.Timestamp = timestampUTC(event.Timestamp)
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(strconv.FormatInt(event.ServerID, 10)),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "action", Value: []byte(event.Action)},
		},
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

// Close flushes buffered records and closes the client.
func (s *KafkaSink) Close(ctx context.Context) error {
	err := s.client.Flush(ctx)
	s.client.Close()
	return err
}
