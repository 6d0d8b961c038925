package event

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Handler processes one decoded change event. A returned error leaves the
// message uncommitted so it is redelivered.
type Handler func(ctx context.Context, evt service.ChangeEvent) error

type Consumer struct {
	reader *kafka.Reader
	logger logger.Logger
}

func NewConsumer(cfg config.Config, log logger.Logger) *Consumer {
	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = TopicPortfolioEvents
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Kafka.Brokers,
			Topic:    topic,
			GroupID:  cfg.Kafka.GroupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
		}),
		logger: log,
	}
}

// Run reads until ctx is cancelled. Undecodable messages are committed and
// skipped.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	c.logger.Info("Worker listening", zap.String("topic", c.reader.Config().Topic))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		var evt service.ChangeEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			c.logger.Warn("Failed to unmarshal event, skipping", zap.Error(err), zap.Int64("offset", msg.Offset))
			c.commit(ctx, msg)
			continue
		}

		c.logger.Info("Processing event",
			zap.String("event_id", evt.ID), zap.String("op", evt.Op), zap.String("profile_id", evt.ProfileID))

		if err := handle(ctx, evt); err != nil {
			c.logger.Error("Failed to process event", err, zap.String("event_id", evt.ID))
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *Consumer) Close() error { return c.reader.Close() }
