package bus

import (
	"context"
	"path"
	"sync"

	"go.uber.org/zap"
)

// MemoryBus delivers messages within one process.
type MemoryBus struct {
	mu       sync.RWMutex
	subs     map[*memorySubscription]struct{}
	closed   bool
	recorder Recorder
	logger   *zap.Logger
}

func NewMemoryBus(recorder Recorder, logger *zap.Logger) *MemoryBus {
	return &MemoryBus{
		subs:     make(map[*memorySubscription]struct{}),
		recorder: recorder,
		logger:   logger,
	}
}

func (b *MemoryBus) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.record(ErrClosed)
		return ErrClosed
	}
	b.record(nil)

	for sub := range b.subs {
		if ok, _ := path.Match(sub.pattern, channel); !ok {
			continue
		}
		msg := Message{Channel: channel, Payload: append([]byte(nil), payload...)}
		select {
		case sub.out <- msg:
			if b.recorder != nil {
				b.recorder.RecordBusReceived()
			}
		default:
			b.logger.Warn("Dropping bus message for slow subscriber", zap.String("channel", channel))
		}
	}
	return nil
}

func (b *MemoryBus) Subscribe(ctx context.Context, pattern string) (Subscription, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}

	sub := &memorySubscription{
		bus:     b,
		pattern: pattern,
		out:     make(chan Message, subscriptionBuffer),
		closed:  make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.closed:
		}
	}()
	return sub, nil
}

// Close ends every subscription.
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		sub.shutdown()
	}
}

func (b *MemoryBus) record(err error) {
	if b.recorder != nil {
		b.recorder.RecordBusPublish(err)
	}
}

type memorySubscription struct {
	bus     *MemoryBus
	pattern string
	out     chan Message
	closed  chan struct{}
	once    sync.Once
}

// shutdown must be called with bus.mu held.
func (s *memorySubscription) shutdown() {
	s.once.Do(func() {
		close(s.out)
		close(s.closed)
	})
}

func (s *memorySubscription) Messages() <-chan Message { return s.out }

func (s *memorySubscription) Close() error {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	delete(s.bus.subs, s)
	s.shutdown()
	return nil
}
