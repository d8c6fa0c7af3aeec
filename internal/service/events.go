package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"sticky-board-api/internal/bus"
	"sticky-board-api/internal/domain"
)

// EventPublisher encodes change events and sends them on the board's channel.
// A failed publish is logged and never fails the caller.
type EventPublisher struct {
	bus    bus.Bus
	prefix string
	logger *zap.Logger
}

func NewEventPublisher(b bus.Bus, channelPrefix string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{bus: b, prefix: channelPrefix, logger: logger}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to encode change event",
			zap.String("type", string(event.Type)),
			zap.String("board_code", event.BoardCode),
			zap.Error(err))
		return
	}
	if err := p.bus.Publish(ctx, bus.BoardChannel(p.prefix, event.BoardCode), payload); err != nil {
		p.logger.Warn("Failed to publish change event",
			zap.String("type", string(event.Type)),
			zap.String("board_code", event.BoardCode),
			zap.Error(err))
	}
}
