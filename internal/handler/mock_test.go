package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CheckBoardFunc    func(ctx context.Context, code string) (*dto.CheckBoardResponse, error)
	CreateBoardFunc   func(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error)
	AccessBoardFunc   func(ctx context.Context, code string, req *dto.AccessBoardRequest) (*domain.Board, error)
	GetBoardFunc      func(ctx context.Context, code string) (*domain.Board, error)
	GetUserBoardsFunc func(ctx context.Context, userID string) ([]domain.ParticipantBoard, error)
}

func (m *MockBoardService) CheckBoard(ctx context.Context, code string) (*dto.CheckBoardResponse, error) {
	if m.CheckBoardFunc != nil {
		return m.CheckBoardFunc(ctx, code)
	}
	return &dto.CheckBoardResponse{Code: code}, nil
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return &domain.Board{}, nil
}

func (m *MockBoardService) AccessBoard(ctx context.Context, code string, req *dto.AccessBoardRequest) (*domain.Board, error) {
	if m.AccessBoardFunc != nil {
		return m.AccessBoardFunc(ctx, code, req)
	}
	return &domain.Board{Code: code}, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, code string) (*domain.Board, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, code)
	}
	return &domain.Board{Code: code}, nil
}

func (m *MockBoardService) GetUserBoards(ctx context.Context, userID string) ([]domain.ParticipantBoard, error) {
	if m.GetUserBoardsFunc != nil {
		return m.GetUserBoardsFunc(ctx, userID)
	}
	return []domain.ParticipantBoard{}, nil
}

// MockNoteService is a mock implementation of NoteService
type MockNoteService struct {
	GetNotesFunc   func(ctx context.Context, boardCode string) ([]domain.Note, error)
	CreateNoteFunc func(ctx context.Context, boardCode string, req *dto.CreateNoteRequest) (*domain.Note, error)
	MoveNoteFunc   func(ctx context.Context, noteID string, req *dto.MoveNoteRequest) (*domain.Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID, authorID string) error
}

func (m *MockNoteService) GetNotes(ctx context.Context, boardCode string) ([]domain.Note, error) {
	if m.GetNotesFunc != nil {
		return m.GetNotesFunc(ctx, boardCode)
	}
	return []domain.Note{}, nil
}

func (m *MockNoteService) CreateNote(ctx context.Context, boardCode string, req *dto.CreateNoteRequest) (*domain.Note, error) {
	if m.CreateNoteFunc != nil {
		return m.CreateNoteFunc(ctx, boardCode, req)
	}
	return &domain.Note{BoardCode: boardCode}, nil
}

func (m *MockNoteService) MoveNote(ctx context.Context, noteID string, req *dto.MoveNoteRequest) (*domain.Note, error) {
	if m.MoveNoteFunc != nil {
		return m.MoveNoteFunc(ctx, noteID, req)
	}
	return &domain.Note{ID: noteID}, nil
}

func (m *MockNoteService) DeleteNote(ctx context.Context, noteID, authorID string) error {
	if m.DeleteNoteFunc != nil {
		return m.DeleteNoteFunc(ctx, noteID, authorID)
	}
	return nil
}

// MockParticipantService is a mock implementation of ParticipantService
type MockParticipantService struct {
	RemoveParticipantFunc func(ctx context.Context, boardCode, userID string) error
}

func (m *MockParticipantService) RemoveParticipant(ctx context.Context, boardCode, userID string) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, boardCode, userID)
	}
	return nil
}

// MockPresenceService is a mock implementation of PresenceService
type MockPresenceService struct {
	JoinFunc           func(ctx context.Context, boardCode, userID, name string) (*domain.Board, error)
	LeaveFunc          func(ctx context.Context, boardCode, userID string) error
	RosterFunc         func(ctx context.Context, boardCode string) ([]domain.Presence, error)
	SweepExpiredFunc   func(ctx context.Context) (int64, error)
	UserPanelCountFunc func(ctx context.Context, boardCode, userID string) (*dto.UserPanelCountResponse, error)
}

func (m *MockPresenceService) Join(ctx context.Context, boardCode, userID, name string) (*domain.Board, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, boardCode, userID, name)
	}
	return &domain.Board{Code: boardCode}, nil
}

func (m *MockPresenceService) Leave(ctx context.Context, boardCode, userID string) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, boardCode, userID)
	}
	return nil
}

func (m *MockPresenceService) Roster(ctx context.Context, boardCode string) ([]domain.Presence, error) {
	if m.RosterFunc != nil {
		return m.RosterFunc(ctx, boardCode)
	}
	return []domain.Presence{}, nil
}

func (m *MockPresenceService) SweepExpired(ctx context.Context) (int64, error) {
	if m.SweepExpiredFunc != nil {
		return m.SweepExpiredFunc(ctx)
	}
	return 0, nil
}

func (m *MockPresenceService) UserPanelCount(ctx context.Context, boardCode, userID string) (*dto.UserPanelCountResponse, error) {
	if m.UserPanelCountFunc != nil {
		return m.UserPanelCountFunc(ctx, boardCode, userID)
	}
	return &dto.UserPanelCountResponse{}, nil
}
