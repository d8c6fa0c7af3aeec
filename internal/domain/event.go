package domain

// EventKind names what changed on a board.
type EventKind string

const (
	EventNewNote           EventKind = "NEW_NOTE"
	EventNoteMoved         EventKind = "NOTE_MOVED"
	EventNoteDeleted       EventKind = "NOTE_DELETED"
	EventParticipantJoined EventKind = "PARTICIPANT_JOINED"
	EventParticipantLeft   EventKind = "PARTICIPANT_LEFT"
)

// ChangeEvent is the transient message fanned out to every connection bound to a board.
// It is encoded once by the publisher and relayed to clients byte for byte.
type ChangeEvent struct {
	Type        EventKind           `json:"type"`
	BoardCode   string              `json:"boardCode"`
	Note        *Note               `json:"note,omitempty"`
	NoteID      string              `json:"noteId,omitempty"`
	Participant *ParticipantSummary `json:"participant,omitempty"`
}

// IsPresenceEvent reports whether the event is join/leave chatter rather than board content.
func (e ChangeEvent) IsPresenceEvent() bool {
	return e.Type == EventParticipantJoined || e.Type == EventParticipantLeft
}
