package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"sticky-board-api/internal/config"
	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/metrics"
	"sticky-board-api/internal/response"
)

const teardownTimeout = 5 * time.Second

// PresenceTracker records who is on a board.
type PresenceTracker interface {
	Join(ctx context.Context, boardCode, userID, name string) (*domain.Board, error)
	Leave(ctx context.Context, boardCode, userID string) error
}

// NoteLister returns a board's notes, newest first.
type NoteLister interface {
	GetNotes(ctx context.Context, boardCode string) ([]domain.Note, error)
}

// Publisher sends an event to every instance.
type Publisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent)
}

// Gateway upgrades HTTP requests to live connections and runs the join/leave/heartbeat protocol.
type Gateway struct {
	hub       *Hub
	presence  PresenceTracker
	notes     NoteLister
	publisher Publisher
	cfg       config.RealtimeConfig
	upgrader  websocket.Upgrader
	metrics   *metrics.Metrics
	logger    *zap.Logger

	// admit orders connection admission against Shutdown.
	admit   sync.Mutex
	closing atomic.Bool
	wg      sync.WaitGroup
}

func NewGateway(
	hub *Hub,
	presence PresenceTracker,
	notes NoteLister,
	publisher Publisher,
	cfg config.RealtimeConfig,
	allowedOrigins []string,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Gateway {
	g := &Gateway{
		hub:       hub,
		presence:  presence,
		notes:     notes,
		publisher: publisher,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
	}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return g
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[strings.TrimRight(origin, "/")]
		return ok
	}
}

// Handle godoc
// @Summary      Live board channel
// @Description  Upgrades to a WebSocket. Send JOIN {boardCode,userName,userId}, then HEARTBEAT periodically and LEAVE to unbind.
// @Description  Server frames: INITIAL_NOTES, NEW_NOTE, NOTE_MOVED, NOTE_DELETED, PARTICIPANT_JOINED, PARTICIPANT_LEFT, ERROR.
// @Tags         realtime
// @Success      101 "Switching Protocols"
// @Failure      503 {object} response.ErrorResponse "서버 종료 중"
// @Router       /ws [get]
func (g *Gateway) Handle(c *gin.Context) {
	if g.closing.Load() {
		response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeInternal, "server is shutting down")
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := newClient(conn, g.cfg.SendBufferSize, func() {
		g.logger.Warn("Closing slow consumer", zap.String("remote", conn.RemoteAddr().String()))
		if g.metrics != nil {
			g.metrics.RecordSlowConsumer()
		}
	})

	g.admit.Lock()
	if g.closing.Load() {
		g.admit.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	g.wg.Add(1)
	g.hub.add(client)
	g.admit.Unlock()

	if g.metrics != nil {
		g.metrics.ConnectionOpened()
	}

	go client.writePump()
	go g.readPump(client)
}

func (g *Gateway) readPump(c *Client) {
	defer g.teardown(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				g.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var frame InboundFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			g.sendError(c, response.NewAppError(response.ErrCodeValidation, "malformed frame", ""))
			continue
		}
		g.handleFrame(c, &frame)
	}
}

func (g *Gateway) handleFrame(c *Client, frame *InboundFrame) {
	ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	var err error
	switch frame.Type {
	case FrameJoin:
		err = g.handleJoin(ctx, c, frame)
	case FrameLeave:
		err = g.handleLeave(ctx, c)
	case FrameHeartbeat:
		err = g.handleHeartbeat(ctx, c)
	default:
		err = response.NewAppError(response.ErrCodeValidation, "unknown frame type "+frame.Type, "")
	}
	if err != nil {
		g.sendError(c, err)
	}
}

func (g *Gateway) handleJoin(ctx context.Context, c *Client, frame *InboundFrame) error {
	if _, _, _, bound := c.binding(); bound {
		return response.NewAppError(response.ErrCodeValidation, "already joined a board, send LEAVE first", "")
	}
	code := strings.ToUpper(strings.TrimSpace(frame.BoardCode))
	userID := strings.TrimSpace(frame.UserID)
	userName := strings.TrimSpace(frame.UserName)
	if code == "" || userID == "" || userName == "" {
		return response.NewAppError(response.ErrCodeValidation, "boardCode, userName and userId are required", "")
	}

	if _, err := g.presence.Join(ctx, code, userID, userName); err != nil {
		return err
	}

	c.setBinding(code, userID, userName)
	g.hub.bind(code, userID, c)

	notes, err := g.notes.GetNotes(ctx, code)
	if err != nil {
		remaining := g.hub.unbind(code, c)
		c.clearBinding()
		if remaining == 0 {
			_ = g.presence.Leave(ctx, code, userID)
		}
		return err
	}
	g.sendJSON(c, InitialNotesFrame{Type: FrameInitialNotes, BoardCode: code, Notes: notes})

	g.announce(ctx, c, domain.ChangeEvent{
		Type:        domain.EventParticipantJoined,
		BoardCode:   code,
		Participant: &domain.ParticipantSummary{UserID: userID, UserName: userName},
	})
	g.logger.Debug("Client joined board", zap.String("board_code", code), zap.String("user_id", userID))
	return nil
}

func (g *Gateway) handleLeave(ctx context.Context, c *Client) error {
	code, userID, userName, bound := c.binding()
	if !bound {
		return response.NewAppError(response.ErrCodeValidation, "not joined to a board", "")
	}
	g.release(ctx, c, code, userID, userName)
	return nil
}

func (g *Gateway) handleHeartbeat(ctx context.Context, c *Client) error {
	code, userID, userName, bound := c.binding()
	if !bound {
		return response.NewAppError(response.ErrCodeValidation, "not joined to a board", "")
	}
	_, err := g.presence.Join(ctx, code, userID, userName)
	return err
}

// release unbinds c. Presence is removed and the departure announced only when
// no other connection is still bound to the board as the same user.
func (g *Gateway) release(ctx context.Context, c *Client, code, userID, userName string) {
	remaining := g.hub.unbind(code, c)
	c.clearBinding()
	if remaining > 0 {
		g.logger.Debug("User still connected elsewhere, keeping presence",
			zap.String("board_code", code), zap.String("user_id", userID), zap.Int("connections", remaining))
		return
	}

	if err := g.presence.Leave(ctx, code, userID); err != nil {
		g.logger.Warn("Failed to remove presence",
			zap.String("board_code", code), zap.String("user_id", userID), zap.Error(err))
	}

	g.announce(ctx, c, domain.ChangeEvent{
		Type:        domain.EventParticipantLeft,
		BoardCode:   code,
		Participant: &domain.ParticipantSummary{UserID: userID, UserName: userName},
	})
}

// announce sends a join/leave event to the board's other connections, across
// instances when presence travels on the bus.
func (g *Gateway) announce(ctx context.Context, c *Client, event domain.ChangeEvent) {
	if g.cfg.BroadcastPresenceViaBus {
		g.publisher.Publish(ctx, event)
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		g.logger.Error("Failed to encode presence event", zap.Error(err))
		return
	}
	g.hub.Broadcast(event.BoardCode, payload, func(other *Client) bool { return other == c })
}

// teardown runs once per connection regardless of how it ended.
func (g *Gateway) teardown(c *Client) {
	c.teardownOnce.Do(func() {
		defer g.wg.Done()

		if code, userID, userName, bound := c.binding(); bound {
			ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
			g.release(ctx, c, code, userID, userName)
			cancel()
		}
		g.hub.remove(c)
		c.close()
		if g.metrics != nil {
			g.metrics.ConnectionClosed()
		}
	})
}

func (g *Gateway) sendJSON(c *Client, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		g.logger.Error("Failed to encode frame", zap.Error(err))
		return
	}
	c.enqueue(payload)
}

func (g *Gateway) sendError(c *Client, err error) {
	frame := ErrorFrame{Type: FrameError, Code: response.ErrCodeInternal, Message: "internal error"}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		frame.Code = appErr.Code
		frame.Message = appErr.Message
	} else {
		g.logger.Error("Unhandled gateway error", zap.Error(err))
	}
	g.sendJSON(c, frame)
}

// Hub exposes the connection index for the relay and probes.
func (g *Gateway) Hub() *Hub {
	return g.hub
}

// Shutdown closes every connection and waits until each has released its presence.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.admit.Lock()
	g.closing.Store(true)
	clients := g.hub.snapshot()
	g.admit.Unlock()

	closeMsg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, c := range clients {
		_ = c.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))
		c.close()
	}

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
