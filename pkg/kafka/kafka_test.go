package kafka_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"legal-office-management/pkg/kafka"
	pkgLog "legal-office-management/pkg/log"
)

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}

func TestProducerPublish(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, producerConfig())
		sp.ExpectSendMessageAndSucceed()
		sp.ExpectSendMessageAndSucceed()

		p := kafka.NewProducerFromSync(sp, pkgLog.NewNop())
		err := p.Publish(context.Background(), "prazo.created",
			kafka.Message{Key: "a", Value: []byte("1")},
			kafka.Message{Key: "b", Value: []byte("2")},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, producerConfig())
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := kafka.NewProducerFromSync(sp, pkgLog.NewNop())
		err := p.Publish(context.Background(), "prazo.created", kafka.Message{Key: "a", Value: []byte("1")})
		if err == nil {
			t.Fatal("expected publish error")
		}
		_ = p.Close()
	})

	t.Run("Empty", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, producerConfig())
		p := kafka.NewProducerFromSync(sp, pkgLog.NewNop())
		if err := p.Publish(context.Background(), "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = p.Close()
	})
}

type fakeSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "member-1" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "andamentos.sync" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

func feed(n int) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, n)
	for i := 0; i < n; i++ {
		ch <- &sarama.ConsumerMessage{Offset: int64(i), Key: []byte("k"), Value: []byte("v")}
	}
	close(ch)
	return &fakeClaim{ch: ch}
}

func TestBatchHandler(t *testing.T) {
	t.Run("Batches And Marks", func(t *testing.T) {
		var sizes []int
		h := kafka.NewBatchHandler(func(ctx context.Context, messages []kafka.Message) error {
			sizes = append(sizes, len(messages))
			return nil
		}, pkgLog.NewNop(), 2, time.Minute)

		session := &fakeSession{ctx: context.Background()}
		if err := h.ConsumeClaim(session, feed(5)); err != nil {
			t.Fatalf("ConsumeClaim() error: %v", err)
		}

		if len(sizes) != 3 || sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 1 {
			t.Errorf("batch sizes = %v, want [2 2 1]", sizes)
		}
		if len(session.marked) != 5 {
			t.Errorf("marked %d messages, want 5", len(session.marked))
		}
	})

	t.Run("Failed Batch Stops The Claim", func(t *testing.T) {
		calls := 0
		h := kafka.NewBatchHandler(func(ctx context.Context, messages []kafka.Message) error {
			calls++
			return errors.New("db down")
		}, pkgLog.NewNop(), 10, time.Minute)

		session := &fakeSession{ctx: context.Background()}
		if err := h.ConsumeClaim(session, feed(3)); err == nil {
			t.Fatal("ConsumeClaim() expected error for a failing batch")
		}
		if calls != 3 {
			t.Errorf("handler called %d times, want 3 attempts", calls)
		}
		if len(session.marked) != 0 {
			t.Errorf("marked %d messages, want 0", len(session.marked))
		}
	})

	t.Run("Later Batch Not Marked After Failure", func(t *testing.T) {
		calls := 0
		h := kafka.NewBatchHandler(func(ctx context.Context, messages []kafka.Message) error {
			calls++
			if calls <= 3 {
				return errors.New("constraint violation")
			}
			return nil
		}, pkgLog.NewNop(), 2, time.Minute)

		// offsets 0-1 fail on every attempt, offsets 2-3 would succeed
		session := &fakeSession{ctx: context.Background()}
		if err := h.ConsumeClaim(session, feed(4)); err == nil {
			t.Fatal("ConsumeClaim() expected error")
		}
		if calls != 3 {
			t.Errorf("handler called %d times, want the second batch never processed", calls)
		}
		if len(session.marked) != 0 {
			t.Errorf("marked offsets %v after a failed batch, want none", session.marked)
		}
	})

	t.Run("Retry Recovers", func(t *testing.T) {
		calls := 0
		h := kafka.NewBatchHandler(func(ctx context.Context, messages []kafka.Message) error {
			calls++
			if calls == 1 {
				return errors.New("transient")
			}
			return nil
		}, pkgLog.NewNop(), 10, time.Minute)

		session := &fakeSession{ctx: context.Background()}
		if err := h.ConsumeClaim(session, feed(3)); err != nil {
			t.Fatalf("ConsumeClaim() error: %v", err)
		}
		if calls != 2 || len(session.marked) != 3 {
			t.Errorf("calls=%d marked=%v, want 2 calls and 3 marked", calls, session.marked)
		}
	})

	t.Run("Setup And Cleanup", func(t *testing.T) {
		h := kafka.NewBatchHandler(func(context.Context, []kafka.Message) error { return nil }, pkgLog.NewNop(), 0, 0)
		session := &fakeSession{ctx: context.Background()}
		if err := h.Setup(session); err != nil {
			t.Errorf("Setup() error: %v", err)
		}
		if err := h.Cleanup(session); err != nil {
			t.Errorf("Cleanup() error: %v", err)
		}
	})
}
