package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

// Client is one live connection. It is bound to at most one (board, user) pair.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	mu        sync.Mutex
	boardCode string
	userID    string
	userName  string

	closeOnce    sync.Once
	teardownOnce sync.Once
	onSlow       func()
}

func newClient(conn *websocket.Conn, buffer int, onSlow func()) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
		onSlow: onSlow,
	}
}

// binding returns the bound pair; ok is false while unbound.
func (c *Client) binding() (boardCode, userID, userName string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boardCode, c.userID, c.userName, c.boardCode != ""
}

func (c *Client) setBinding(boardCode, userID, userName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boardCode, c.userID, c.userName = boardCode, userID, userName
}

func (c *Client) clearBinding() {
	c.setBinding("", "", "")
}

// UserID is the bound user, or empty.
func (c *Client) UserID() string {
	_, userID, _, _ := c.binding()
	return userID
}

// enqueue never blocks; a full buffer closes the connection.
func (c *Client) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	default:
		if c.onSlow != nil {
			c.onSlow()
		}
		c.close()
		return false
	}
}

// close stops the writer and the underlying transport. Safe to call repeatedly.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
