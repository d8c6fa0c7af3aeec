package metrics

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementNoteCreated increments note creation counter
func (m *Metrics) IncrementNoteCreated() {
	m.safeExecute("IncrementNoteCreated", func() {
		m.NoteCreatedTotal.Inc()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetNotesTotal sets total notes gauge
func (m *Metrics) SetNotesTotal(count int64) {
	m.safeExecute("SetNotesTotal", func() {
		m.NotesTotal.Set(float64(count))
	})
}

func (m *Metrics) SetPresenceLive(count int64) {
	m.safeExecute("SetPresenceLive", func() {
		m.PresenceLive.Set(float64(count))
	})
}
