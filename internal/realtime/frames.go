package realtime

import "sticky-board-api/internal/domain"

// inbound frame types
const (
	FrameJoin      = "JOIN"
	FrameLeave     = "LEAVE"
	FrameHeartbeat = "HEARTBEAT"
)

// outbound frame types besides relayed change events
const (
	FrameInitialNotes = "INITIAL_NOTES"
	FrameError        = "ERROR"
)

// InboundFrame is any client to server frame.
type InboundFrame struct {
	Type      string `json:"type"`
	BoardCode string `json:"boardCode,omitempty"`
	UserName  string `json:"userName,omitempty"`
	UserID    string `json:"userId,omitempty"`
}

type InitialNotesFrame struct {
	Type      string        `json:"type"`
	BoardCode string        `json:"boardCode"`
	Notes     []domain.Note `json:"notes"`
}

type ErrorFrame struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
