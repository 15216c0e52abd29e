package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

// Publisher delivers outbound replies back to the chat stream.
type Publisher interface {
	Publish(ctx context.Context, reply models.OutboundReply) error
}

func NewPublisher(lc fx.Lifecycle, conf *config.Config) Publisher {
	if !conf.Kafka.Enabled || conf.Kafka.ReplyTopic == "" {
		return &logPublisher{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(conf.Kafka.Brokers...),
		Topic:    conf.Kafka.ReplyTopic,
		Balancer: &kafka.Hash{},
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &kafkaPublisher{writer: writer}
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// Publish keys messages by session id so replies for one session stay on
// one partition, in order.
func (p *kafkaPublisher) Publish(ctx context.Context, reply models.OutboundReply) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(reply.SessionID),
		Value: data,
	})
}

// logPublisher is used when no reply topic is configured.
type logPublisher struct{}

func (p *logPublisher) Publish(ctx context.Context, reply models.OutboundReply) error {
	log.Infow(ctx, "reply not published, no reply topic configured",
		"session_id", reply.SessionID, "text", reply.Text)
	return nil
}
