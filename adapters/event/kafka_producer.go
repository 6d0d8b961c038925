package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

type KafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaPublisher(cfg config.Config, log logger.Logger) (*KafkaPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = TopicPortfolioEvents
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", topic))
	return &KafkaPublisher{writer: writer, logger: log}, nil
}

// Publish keys messages by profile so events for one profile stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, evt service.ChangeEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	key := evt.ProfileID
	if key == "" {
		key = evt.ActiveProfileID
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	err := p.writer.Close()
	p.logger.Info("Closed Kafka Producer")
	return err
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, service.ChangeEvent) error { return nil }
func (NopPublisher) Close() error                                       { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NopPublisher otherwise.
func NewPublisher(cfg config.Config, log logger.Logger) (service.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn("Kafka brokers not configured, change events are disabled")
		return NopPublisher{}, nil
	}
	return NewKafkaPublisher(cfg, log)
}
