package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/usecase"
	"github.com/minhng-ct/commerce-bot/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	maxWorkers     = 5
	consumeTimeout = 30 * time.Second
)

// StartConsumeMessages runs the chat stream adapter: inbound chat events
// are routed through the conversation engine and replies published back.
func StartConsumeMessages(
	sd fx.Shutdowner,
	lc fx.Lifecycle,
	conf *config.Config,
	chatUsecase usecase.ChatUsecase,
	publisher Publisher,
) error {
	if !conf.Kafka.Enabled {
		log.Warnf(context.Background(), "Kafka consumer is disabled in configuration")
		return nil
	}

	metrics, err := util.GetHistogramVec("chat_messages_consumed", "code", "topic", "group")
	if err != nil {
		return fmt.Errorf("get histogram vec: %w", err)
	}

	c := &consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     conf.Kafka.Brokers,
			Topic:       conf.Kafka.Topic,
			GroupID:     conf.Kafka.GroupID,
			StartOffset: kafka.LastOffset,
		}),
		metrics:   metrics,
		botID:     conf.Chat.BotID,
		chat:      chatUsecase,
		publisher: publisher,
		done:      make(chan struct{}),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof(ctx, "Starting Kafka consumer for topic: %s", conf.Kafka.Topic)
				if err := c.run(context.Background()); err != nil {
					log.Errorw(ctx, "Kafka consumer stopped", "error", err)
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(c.done)
			return c.reader.Close()
		},
	})
	return nil
}

type consumer struct {
	reader    *kafka.Reader
	metrics   *prometheus.HistogramVec
	botID     string
	chat      usecase.ChatUsecase
	publisher Publisher
	done      chan struct{}
}

func (c *consumer) run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxWorkers)

	for ctx.Err() == nil {
		select {
		case <-c.done:
			return group.Wait()
		default:
		}

		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, kafka.ErrGroupClosed) {
				break
			}
			log.Errorw(ctx, "Error reading message", "error", err)
			continue
		}

		group.Go(func() error {
			c.processMessage(ctx, msg)
			return nil
		})
	}

	return group.Wait()
}

func (c *consumer) processMessage(ctx context.Context, msg kafka.Message) {
	start := time.Now()
	lagMs := start.Sub(msg.Time).Milliseconds()

	err := c.handle(ctx, msg)
	duration := time.Since(start)

	code := getCode(err)
	content := "success"
	if err != nil {
		content = err.Error()
	}

	log.Logw(ctx, getLogLevel(code), content,
		"code", code,
		"duration_ms", duration.Milliseconds(),
		"topic", msg.Topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
		"lag_ms", lagMs,
		"key", string(msg.Key),
		"value", json.RawMessage(msg.Value),
	)

	c.metrics.
		WithLabelValues(code.String(), msg.Topic, c.reader.Config().GroupID).
		Observe(duration.Seconds())
}

func (c *consumer) handle(msgCtx context.Context, msg kafka.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			length := runtime.Stack(stack, false)
			err = fmt.Errorf("PANIC RECOVER: %+v / %s", r, string(stack[:length]))
		}
	}()

	var event models.ChatEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("unmarshal chat event: %w", err)
	}

	if event.Pattern != "message.sent" {
		log.Infow(msgCtx, "Ignoring non-message.sent event", "pattern", event.Pattern)
		return nil
	}

	// skip the bot's own replies to prevent loops
	if event.Data.SenderID == c.botID {
		return nil
	}

	ctx, cancel := context.WithTimeout(msgCtx, consumeTimeout)
	defer cancel()

	reply, err := c.chat.HandleMessage(ctx, models.InboundMessage{
		SessionID: event.Data.SessionID,
		Channel:   event.Data.Channel,
		Text:      event.Data.Text,
	})
	if err != nil {
		return fmt.Errorf("handle message: %w", err)
	}

	out := models.OutboundReply{
		SessionID: event.Data.SessionID,
		Channel:   event.Data.Channel,
		SenderID:  c.botID,
		Text:      reply.Text,
		Products:  reply.Products,
	}
	if err := c.publisher.Publish(ctx, out); err != nil {
		return fmt.Errorf("publish reply: %w", err)
	}
	return nil
}

func getCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded
	}
	if errors.Is(err, context.Canceled) {
		return codes.Canceled
	}
	st, ok := status.FromError(err)
	if !ok {
		return status.Code(errors.Unwrap(err))
	}
	return st.Code()
}

func getLogLevel(code codes.Code) logger.Level {
	switch code {
	case codes.OK:
		return logger.InfoLevel
	case codes.Canceled,
		codes.InvalidArgument,
		codes.NotFound,
		codes.AlreadyExists,
		codes.FailedPrecondition,
		codes.OutOfRange:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}
