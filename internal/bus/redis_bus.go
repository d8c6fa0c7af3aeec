package bus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const subscriptionBuffer = 1024

// RedisBus fans messages out across instances through Redis pub/sub.
type RedisBus struct {
	client   *redis.Client
	backoff  time.Duration
	recorder Recorder
	logger   *zap.Logger
}

func NewRedisBus(client *redis.Client, backoff time.Duration, recorder Recorder, logger *zap.Logger) *RedisBus {
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	return &RedisBus{client: client, backoff: backoff, recorder: recorder, logger: logger}
}

func (b *RedisBus) Publish(ctx context.Context, channel string, payload []byte) error {
	err := b.client.Publish(ctx, channel, payload).Err()
	if b.recorder != nil {
		b.recorder.RecordBusPublish(err)
	}
	return err
}

// Subscribe starts a supervised PSUBSCRIBE. When the connection drops it is
// re-established after the backoff; messages published in the gap are lost.
func (b *RedisBus) Subscribe(ctx context.Context, pattern string) (Subscription, error) {
	ps := b.client.PSubscribe(ctx, pattern)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &redisSubscription{
		out:    make(chan Message, subscriptionBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go b.supervise(ctx, pattern, ps, sub)
	return sub, nil
}

func (b *RedisBus) supervise(ctx context.Context, pattern string, ps *redis.PubSub, sub *redisSubscription) {
	defer close(sub.done)
	defer close(sub.out)

	for {
		err := b.pump(ctx, ps, sub.out)
		_ = ps.Close()
		if ctx.Err() != nil {
			return
		}
		b.logger.Warn("Bus subscription dropped, resubscribing",
			zap.String("pattern", pattern),
			zap.Duration("backoff", b.backoff),
			zap.Error(err),
		)

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(b.backoff):
			}
			ps = b.client.PSubscribe(ctx, pattern)
			if _, err := ps.Receive(ctx); err != nil {
				_ = ps.Close()
				b.logger.Warn("Resubscribe failed", zap.String("pattern", pattern), zap.Error(err))
				continue
			}
			b.logger.Info("Bus subscription restored", zap.String("pattern", pattern))
			break
		}
	}
}

func (b *RedisBus) pump(ctx context.Context, ps *redis.PubSub, out chan<- Message) error {
	for {
		msg, err := ps.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, redis.ErrClosed) || ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if b.recorder != nil {
			b.recorder.RecordBusReceived()
		}
		select {
		case out <- Message{Channel: msg.Channel, Payload: []byte(msg.Payload)}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type redisSubscription struct {
	out    chan Message
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *redisSubscription) Messages() <-chan Message { return s.out }

func (s *redisSubscription) Close() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}
