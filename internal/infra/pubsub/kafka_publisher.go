package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tracker/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed
// by delivery ID so one delivery's milestones land on one partition in order.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a synchronous Kafka producer for the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishMilestoneEvent writes a milestone to the topic and waits for the ack
func (p *kafkaPublisher) PublishMilestoneEvent(ctx context.Context, event *service.MilestoneEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attrs := milestoneAttributes(event)
	headers := make([]sarama.RecordHeader, 0, len(attrs))
	for k, v := range attrs {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.DeliveryID),
		Value:     sarama.ByteEncoder(data),
		Headers:   headers,
		Timestamp: time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish milestone")
	}

	p.logger.Debug("[Kafka] Milestone published",
		slog.String("milestone_id", event.MilestoneID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close flushes and closes the producer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
