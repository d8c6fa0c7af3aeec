package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_BindUnbindRemove(t *testing.T) {
	h := NewHub()
	a := &Client{send: make(chan []byte, 1), done: make(chan struct{})}
	b := &Client{send: make(chan []byte, 1), done: make(chan struct{})}
	h.add(a)
	h.add(b)
	h.bind("ABC123", "u1", a)
	h.bind("ABC123", "u2", b)

	assert.Equal(t, 2, h.BoardConnections("ABC123"))
	assert.Equal(t, 1, h.Broadcast("ABC123", []byte("x"), func(c *Client) bool { return c == a }))
	assert.Len(t, b.send, 1)
	assert.Len(t, a.send, 0)

	assert.Equal(t, 0, h.unbind("ABC123", a))
	assert.Equal(t, 1, h.BoardConnections("ABC123"))

	h.remove(b)
	assert.Equal(t, 0, h.BoardConnections("ABC123"))
	assert.Equal(t, 1, h.Connections())
}

func TestHub_CountsConnectionsPerUser(t *testing.T) {
	h := NewHub()
	first := &Client{send: make(chan []byte, 1), done: make(chan struct{})}
	second := &Client{send: make(chan []byte, 1), done: make(chan struct{})}
	h.add(first)
	h.add(second)
	h.bind("ABC123", "u1", first)
	h.bind("ABC123", "u1", second)
	h.bind("ABC123", "u1", second)

	assert.Equal(t, 2, h.UserConnections("ABC123", "u1"))
	assert.Equal(t, 1, h.unbind("ABC123", first), "second is still bound as u1")
	assert.Equal(t, 0, h.unbind("ABC123", first), "unbinding twice is a no-op")

	h.remove(second)
	assert.Equal(t, 0, h.UserConnections("ABC123", "u1"))
	assert.Equal(t, 0, h.BoardConnections("ABC123"))
}

func TestRelay_SkipsOwnPresenceEventsOnly(t *testing.T) {
	r := &Relay{viaBus: true}
	self := &Client{userID: "u1", boardCode: "ABC123"}
	other := &Client{userID: "u2", boardCode: "ABC123"}

	skip := r.skipFor([]byte(`{"type":"PARTICIPANT_JOINED","boardCode":"ABC123","participant":{"userId":"u1","userName":"A"}}`))
	if assert.NotNil(t, skip) {
		assert.True(t, skip(self))
		assert.False(t, skip(other))
	}

	assert.Nil(t, r.skipFor([]byte(`{"type":"NOTE_MOVED","boardCode":"ABC123"}`)))

	r.viaBus = false
	assert.Nil(t, r.skipFor([]byte(`{"type":"PARTICIPANT_JOINED","participant":{"userId":"u1"}}`)))
}
