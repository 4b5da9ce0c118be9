package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

// Message is a key/value record exchanged with Kafka.
type Message struct {
	Key      string
	Value    []byte
	internal *sarama.ConsumerMessage
}

// Handler processes one batch. An error is retried; if it persists the claim stops
// with the batch unmarked so the group redelivers it from the last commit.
type Handler func(ctx context.Context, messages []Message) error

// Publisher sends messages to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
}

// Config holds the broker settings.
type Config struct {
	Brokers      []string
	GroupID      string
	BatchSize    int
	BatchTimeout time.Duration
}
