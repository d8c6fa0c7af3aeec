package realtime

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"sticky-board-api/internal/bus"
	"sticky-board-api/internal/domain"
)

// Relay consumes every board channel and fans events out to local connections.
// One relay runs per process.
type Relay struct {
	bus     bus.Bus
	hub     *Hub
	prefix  string
	viaBus  bool
	logger  *zap.Logger
	stopped chan struct{}
}

func NewRelay(b bus.Bus, hub *Hub, channelPrefix string, presenceViaBus bool, logger *zap.Logger) *Relay {
	return &Relay{
		bus:     b,
		hub:     hub,
		prefix:  channelPrefix,
		viaBus:  presenceViaBus,
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// Start subscribes and relays in the background until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	sub, err := r.bus.Subscribe(ctx, bus.BoardPattern(r.prefix))
	if err != nil {
		return err
	}
	go r.run(sub)
	return nil
}

// Done is closed once the subscription has ended.
func (r *Relay) Done() <-chan struct{} {
	return r.stopped
}

func (r *Relay) run(sub bus.Subscription) {
	defer close(r.stopped)
	defer sub.Close()

	for msg := range sub.Messages() {
		code := strings.TrimPrefix(msg.Channel, r.prefix)
		if code == "" || code == msg.Channel {
			continue
		}
		r.hub.Broadcast(code, msg.Payload, r.skipFor(msg.Payload))
	}
	r.logger.Info("Relay stopped")
}

// skipFor keeps a participant event away from the connections of the user it describes.
func (r *Relay) skipFor(payload []byte) func(*Client) bool {
	if !r.viaBus {
		return nil
	}
	var head domain.ChangeEvent
	if err := json.Unmarshal(payload, &head); err != nil {
		r.logger.Warn("Relaying undecodable event", zap.Error(err))
		return nil
	}
	if !head.IsPresenceEvent() || head.Participant == nil {
		return nil
	}
	userID := head.Participant.UserID
	return func(c *Client) bool { return c.UserID() == userID }
}
