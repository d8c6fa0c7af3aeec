package realtime

import "sync"

// Hub indexes live connections by the board they are bound to.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	// boards maps a board code to its bound connections and the user each is bound as.
	boards map[string]map[*Client]string
	// users counts bound connections per board and user.
	users map[string]map[string]int
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		boards:  make(map[string]map[*Client]string),
		users:   make(map[string]map[string]int),
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// remove drops the connection from every index.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	for code, members := range h.boards {
		if _, ok := members[c]; ok {
			h.detachLocked(code, c)
		}
	}
}

func (h *Hub) bind(code, userID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.boards[code]
	if !ok {
		members = make(map[*Client]string)
		h.boards[code] = members
	}
	if _, already := members[c]; already {
		return
	}
	members[c] = userID

	counts, ok := h.users[code]
	if !ok {
		counts = make(map[string]int)
		h.users[code] = counts
	}
	counts[userID]++
}

// unbind detaches c from code and returns how many other connections are
// still bound to the same board as the same user.
func (h *Hub) unbind(code string, c *Client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.detachLocked(code, c)
}

func (h *Hub) detachLocked(code string, c *Client) int {
	members := h.boards[code]
	userID, ok := members[c]
	if !ok {
		return 0
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.boards, code)
	}

	counts := h.users[code]
	counts[userID]--
	remaining := counts[userID]
	if remaining <= 0 {
		delete(counts, userID)
		remaining = 0
	}
	if len(counts) == 0 {
		delete(h.users, code)
	}
	return remaining
}

// UserConnections is the number of connections bound to code as userID.
func (h *Hub) UserConnections(code, userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.users[code][userID]
}

// Broadcast queues payload on every connection bound to code for which skip returns false.
func (h *Hub) Broadcast(code string, payload []byte, skip func(*Client) bool) int {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.boards[code]))
	for c := range h.boards[code] {
		if skip != nil && skip(c) {
			continue
		}
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if c.enqueue(payload) {
			delivered++
		}
	}
	return delivered
}

// BoardConnections is the number of connections bound to code.
func (h *Hub) BoardConnections(code string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.boards[code])
}

// Connections is the number of open connections, bound or not.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}
