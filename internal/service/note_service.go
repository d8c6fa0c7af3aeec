package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/metrics"
	"sticky-board-api/internal/repository"
	"sticky-board-api/internal/response"
)

// Publisher sends change events to every instance.
type Publisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent)
}

// NoteService defines the interface for note business logic
type NoteService interface {
	GetNotes(ctx context.Context, boardCode string) ([]domain.Note, error)
	CreateNote(ctx context.Context, boardCode string, req *dto.CreateNoteRequest) (*domain.Note, error)
	MoveNote(ctx context.Context, noteID string, req *dto.MoveNoteRequest) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID, authorID string) error
}

type noteServiceImpl struct {
	noteRepo  repository.NoteRepository
	boardRepo repository.BoardRepository
	cache     BoardCache
	publisher Publisher
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewNoteService creates a new instance of NoteService
func NewNoteService(
	noteRepo repository.NoteRepository,
	boardRepo repository.BoardRepository,
	cache BoardCache,
	publisher Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) NoteService {
	return &noteServiceImpl{
		noteRepo:  noteRepo,
		boardRepo: boardRepo,
		cache:     cache,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
		metrics:   m,
		logger:    logger,
	}
}

func (s *noteServiceImpl) GetNotes(ctx context.Context, boardCode string) ([]domain.Note, error) {
	code := normalizeCode(boardCode)
	if _, err := s.cache.GetBoard(ctx, code); err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}
	notes, err := s.cache.GetNotes(ctx, code)
	if err != nil {
		return nil, internalError("Failed to load notes", err)
	}
	return notes, nil
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, boardCode string, req *dto.CreateNoteRequest) (*domain.Note, error) {
	content := strings.TrimSpace(req.Content)
	authorID := strings.TrimSpace(req.AuthorID)
	if content == "" || authorID == "" {
		return nil, validationError("content and authorId are required")
	}
	code := normalizeCode(boardCode)

	board, err := s.cache.GetBoard(ctx, code)
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}

	var authorName *string
	if req.AuthorName != nil {
		if name := strings.TrimSpace(*req.AuthorName); name != "" {
			authorName = &name
		}
	}
	if authorName == nil && !board.Category.AllowsAnonymous() {
		return nil, validationError("anonymous notes are not allowed on this board")
	}

	note := &domain.Note{
		BoardCode:  code,
		AuthorName: authorName,
		AuthorID:   authorID,
		Content:    content,
		Color:      board.Category.NotePalette().Snap(req.Color),
		PositionX:  positionOrDefault(req.PositionX),
		PositionY:  positionOrDefault(req.PositionY),
		CreatedAt:  s.now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, internalError("Failed to create note", err)
	}

	s.cache.InvalidateNotes(ctx, code)
	s.publisher.Publish(ctx, domain.ChangeEvent{Type: domain.EventNewNote, BoardCode: code, Note: note})
	if err := s.boardRepo.TouchActivity(ctx, code, note.CreatedAt); err != nil {
		s.logger.Warn("Failed to update board activity", zap.String("board_code", code), zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.IncrementNoteCreated()
	}
	return note, nil
}

func (s *noteServiceImpl) MoveNote(ctx context.Context, noteID string, req *dto.MoveNoteRequest) (*domain.Note, error) {
	if req.PositionX == nil || req.PositionY == nil {
		return nil, validationError("positionX and positionY are required")
	}
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return nil, validationError("note id is required")
	}

	note, err := s.noteRepo.UpdatePosition(ctx, noteID, *req.PositionX, *req.PositionY)
	if err != nil {
		return nil, translate(err, errNoteNotFound, "Failed to move note")
	}

	s.cache.InvalidateNotes(ctx, note.BoardCode)
	s.publisher.Publish(ctx, domain.ChangeEvent{Type: domain.EventNoteMoved, BoardCode: note.BoardCode, Note: note})
	return note, nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, noteID, authorID string) error {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return validationError("note id is required")
	}

	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return translate(err, errNoteNotFound, "Failed to load note")
	}

	board, err := s.cache.GetBoard(ctx, note.BoardCode)
	if err != nil {
		return translate(err, errBoardNotFound, "Failed to load board")
	}
	if !canDelete(note, board.Category, strings.TrimSpace(authorID)) {
		return response.NewAppError(response.ErrCodeForbidden, "Only the author can delete this note", "")
	}

	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		return translate(err, errNoteNotFound, "Failed to delete note")
	}

	s.cache.InvalidateNotes(ctx, note.BoardCode)
	s.publisher.Publish(ctx, domain.ChangeEvent{Type: domain.EventNoteDeleted, BoardCode: note.BoardCode, NoteID: noteID})
	return nil
}

// canDelete allows the author, or anyone for an anonymous note on a board that permits anonymity.
func canDelete(note *domain.Note, category domain.Category, authorID string) bool {
	if authorID != "" && note.AuthorID == authorID {
		return true
	}
	return note.IsAnonymous() && category.AllowsAnonymous()
}

func positionOrDefault(v *int) int {
	if v == nil {
		return domain.DefaultPosition
	}
	return *v
}
