package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"uniforms-pos/internal/service"
)

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

// MessageHandler applies one message payload.
type MessageHandler interface {
	HandleMessage(ctx context.Context, payload []byte) error
}

// Consumer reads sale events, retries transient failures with
// exponential backoff and parks messages that still fail on the
// dead-letter topic.
type Consumer struct {
	cfg    Config
	reader *kafka.Reader
	dlq    *kafka.Writer
	h      MessageHandler
	sleep  func(ctx context.Context, d time.Duration)
}

func NewConsumer(cfg Config, h MessageHandler) *Consumer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})
	var w *kafka.Writer
	if cfg.DLQ != "" {
		w = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}

	return &Consumer{cfg: cfg, reader: r, dlq: w, h: h, sleep: sleepCtx}
}

func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			logrus.WithError(err).Warn("kafka fetch")
			c.sleep(ctx, 300*time.Millisecond)
			continue
		}
		log := logrus.WithFields(logrus.Fields{
			"partition": m.Partition,
			"offset":    m.Offset,
			"key":       string(m.Key),
		})
		log.Debug("message fetched")

		attempts, last := c.handle(ctx, m.Value)
		if last == nil {
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				log.WithError(err).Error("commit")
			}
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		if c.dlq != nil {
			if err := c.dlq.WriteMessages(ctx, deadLetter(m, last, attempts, c.reader.Config())); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.WithError(err).Error("write to DLQ")
				c.sleep(ctx, 500*time.Millisecond)
				continue
			}
			log.WithError(last).Warn("message moved to DLQ")
		} else {
			log.WithError(last).Error("DLQ disabled, message dropped")
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("commit after DLQ")
		}
	}
}

// handle runs the handler until it succeeds, fails permanently or runs
// out of retries. It returns the number of attempts made and the last error.
func (c *Consumer) handle(ctx context.Context, payload []byte) (int, error) {
	var last error
	attempt := 0
	for ; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(ctx, backoff(attempt, c.cfg.BaseBackoff))
			if ctx.Err() != nil {
				return attempt, ctx.Err()
			}
		}
		last = c.h.HandleMessage(ctx, payload)
		if last == nil || isNonRetryable(last) {
			return attempt + 1, last
		}
	}
	return attempt, last
}

func deadLetter(m kafka.Message, cause error, attempts int, rc kafka.ReaderConfig) kafka.Message {
	headers := append([]kafka.Header(nil), m.Headers...)
	headers = append(headers,
		kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(cause))},
		kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
		kafka.Header{Key: "x-dlq-ts", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "x-dlq-source-topic", Value: []byte(rc.Topic)},
		kafka.Header{Key: "x-dlq-group", Value: []byte(rc.GroupID)},
	)
	return kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}
}

func (c *Consumer) Close() error {
	var first error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			first = err
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	d := base * (1 << (n - 1))
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

func isNonRetryable(err error) bool {
	return errors.Is(err, service.ErrDecode) || errors.Is(err, service.ErrValidation)
}
