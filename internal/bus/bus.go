package bus

import (
	"context"
	"errors"
)

// ErrClosed is returned when publishing on a bus that has been shut down.
var ErrClosed = errors.New("bus closed")

// Message is one payload received on a channel matching a subscription pattern.
type Message struct {
	Channel string
	Payload []byte
}

// Subscription delivers messages in publish order per channel until closed.
type Subscription interface {
	Messages() <-chan Message
	Close() error
}

// Bus is an at-most-once publish/subscribe fan-out with glob pattern subscriptions.
type Bus interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, pattern string) (Subscription, error)
}

// Recorder receives bus activity; implemented by metrics.Metrics.
type Recorder interface {
	RecordBusPublish(err error)
	RecordBusReceived()
}

// BoardChannel is the channel carrying change events for one board.
func BoardChannel(prefix, code string) string {
	return prefix + code
}

// BoardPattern matches every board channel under prefix.
func BoardPattern(prefix string) string {
	return prefix + "*"
}
