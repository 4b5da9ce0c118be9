package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	pkgLog "legal-office-management/pkg/log"
)

// Consumer reads topics through a consumer group and hands messages over in batches.
type Consumer struct {
	group        sarama.ConsumerGroup
	l            pkgLog.Logger
	batchSize    int
	batchTimeout time.Duration
}

// NewConsumer joins the consumer group cfg.GroupID.
func NewConsumer(cfg Config, l pkgLog.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	config := newSaramaConfig()
	if cfg.BatchSize > 0 {
		config.ChannelBufferSize = cfg.BatchSize * 2
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}
	return &Consumer{
		group:        group,
		l:            l,
		batchSize:    orDefault(cfg.BatchSize, 50),
		batchTimeout: orDefaultDuration(cfg.BatchTimeout, 2*time.Second),
	}, nil
}

// Consume blocks until ctx is cancelled, rejoining the group after rebalances and errors.
func (c *Consumer) Consume(ctx context.Context, topic string, handler Handler) error {
	h := NewBatchHandler(handler, c.l, c.batchSize, c.batchTimeout)
	for {
		if err := c.group.Consume(ctx, []string{topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.l.Errorf(ctx, "kafka: consume %s: %v", topic, err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(5 * time.Second):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close leaves the group.
func (c *Consumer) Close() error {
	return c.group.Close()
}

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 100 * time.Millisecond
)

// BatchHandler implements sarama.ConsumerGroupHandler, flushing when a batch fills or times out.
type BatchHandler struct {
	handler      Handler
	l            pkgLog.Logger
	batchSize    int
	batchTimeout time.Duration
	maxAttempts  int
	retryBackoff time.Duration
}

// NewBatchHandler creates a group handler around handler.
func NewBatchHandler(handler Handler, l pkgLog.Logger, batchSize int, batchTimeout time.Duration) *BatchHandler {
	return &BatchHandler{
		handler:      handler,
		l:            l,
		batchSize:    orDefault(batchSize, 50),
		batchTimeout: orDefaultDuration(batchTimeout, 2*time.Second),
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
}

func (h *BatchHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.l.Infof(session.Context(), "kafka: session setup member=%s generation=%d", session.MemberID(), session.GenerationID())
	return nil
}

func (h *BatchHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	h.l.Infof(session.Context(), "kafka: session cleanup member=%s", session.MemberID())
	return nil
}

// ConsumeClaim batches the claim's messages. When a batch keeps failing it returns
// the error without marking it or anything after it; sarama then ends the session and
// the group resumes from the last committed offset.
func (h *BatchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	messages := make([]Message, 0, h.batchSize)
	timer := time.NewTimer(h.batchTimeout)
	defer timer.Stop()

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return h.flush(session, messages)
			}

			messages = append(messages, Message{
				Key:      string(message.Key),
				Value:    message.Value,
				internal: message,
			})

			if len(messages) >= h.batchSize {
				if err := h.flush(session, messages); err != nil {
					return err
				}
				messages = messages[:0]
				timer.Reset(h.batchTimeout)
			}

		case <-timer.C:
			if err := h.flush(session, messages); err != nil {
				return err
			}
			messages = messages[:0]
			timer.Reset(h.batchTimeout)

		case <-session.Context().Done():
			// Unflushed messages stay unmarked and are redelivered to the next owner.
			return nil
		}
	}
}

// flush runs the handler, retrying with backoff, and marks the batch only on success.
func (h *BatchHandler) flush(session sarama.ConsumerGroupSession, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}

	ctx := session.Context()
	backoff := h.retryBackoff
	var err error
	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		if err = h.handler(ctx, messages); err == nil {
			break
		}
		h.l.Warnf(ctx, "kafka: batch of %d failed (attempt %d/%d): %v", len(messages), attempt, h.maxAttempts, err)
		if attempt == h.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if err != nil {
		first := messages[0].internal
		if first != nil {
			return fmt.Errorf("kafka: batch from %s/%d@%d failed: %w", first.Topic, first.Partition, first.Offset, err)
		}
		return fmt.Errorf("kafka: batch failed: %w", err)
	}

	for _, msg := range messages {
		if msg.internal != nil {
			session.MarkMessage(msg.internal, "")
		}
	}
	h.l.Debugf(ctx, "kafka: processed batch of %d", len(messages))
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orDefaultDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}
