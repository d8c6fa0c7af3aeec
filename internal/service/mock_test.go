package service

import (
	"context"
	"sync"
	"time"

	"sticky-board-api/internal/domain"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateWithCreatorFunc func(ctx context.Context, board *domain.Board, creator *domain.Participant) error
	FindByCodeFunc        func(ctx context.Context, code string) (*domain.Board, error)
	ExistsByCodeFunc      func(ctx context.Context, code string) (bool, error)
	TouchActivityFunc     func(ctx context.Context, code string, at time.Time) error
	CountFunc             func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) CreateWithCreator(ctx context.Context, board *domain.Board, creator *domain.Participant) error {
	if m.CreateWithCreatorFunc != nil {
		return m.CreateWithCreatorFunc(ctx, board, creator)
	}
	return nil
}

func (m *MockBoardRepository) FindByCode(ctx context.Context, code string) (*domain.Board, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockBoardRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code)
	}
	return false, nil
}

func (m *MockBoardRepository) TouchActivity(ctx context.Context, code string, at time.Time) error {
	if m.TouchActivityFunc != nil {
		return m.TouchActivityFunc(ctx, code, at)
	}
	return nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	CreateFunc         func(ctx context.Context, note *domain.Note) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Note, error)
	FindByBoardFunc    func(ctx context.Context, boardCode string) ([]domain.Note, error)
	UpdatePositionFunc func(ctx context.Context, id string, x, y int) (*domain.Note, error)
	DeleteFunc         func(ctx context.Context, id string) error
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	return nil
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNoteRepository) FindByBoard(ctx context.Context, boardCode string) ([]domain.Note, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardCode)
	}
	return []domain.Note{}, nil
}

func (m *MockNoteRepository) UpdatePosition(ctx context.Context, id string, x, y int) (*domain.Note, error) {
	if m.UpdatePositionFunc != nil {
		return m.UpdatePositionFunc(ctx, id, x, y)
	}
	return nil, nil
}

func (m *MockNoteRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	UpsertFunc           func(ctx context.Context, participant *domain.Participant) error
	RemoveFunc           func(ctx context.Context, boardCode, userID string) error
	FindBoardsByUserFunc func(ctx context.Context, userID string) ([]domain.ParticipantBoard, error)
}

func (m *MockParticipantRepository) Upsert(ctx context.Context, participant *domain.Participant) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) Remove(ctx context.Context, boardCode, userID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, boardCode, userID)
	}
	return nil
}

func (m *MockParticipantRepository) FindBoardsByUser(ctx context.Context, userID string) ([]domain.ParticipantBoard, error) {
	if m.FindBoardsByUserFunc != nil {
		return m.FindBoardsByUserFunc(ctx, userID)
	}
	return []domain.ParticipantBoard{}, nil
}

// MockPresenceRepository is a mock implementation of PresenceRepository
type MockPresenceRepository struct {
	JoinWithinCapacityFunc        func(ctx context.Context, entry *domain.Presence, maxUsers int, cutoff time.Time) error
	HasCapacityFunc               func(ctx context.Context, boardCode, userID string, maxUsers int, cutoff time.Time) (bool, error)
	RemoveFunc                    func(ctx context.Context, boardCode, userID string) error
	FindLiveFunc                  func(ctx context.Context, boardCode string, cutoff time.Time) ([]domain.Presence, error)
	DeleteExpiredFunc             func(ctx context.Context, cutoff time.Time) (int64, error)
	CountLiveBoardsByCategoryFunc func(ctx context.Context, userID string, category domain.Category, cutoff time.Time) (int64, error)
}

func (m *MockPresenceRepository) JoinWithinCapacity(ctx context.Context, entry *domain.Presence, maxUsers int, cutoff time.Time) error {
	if m.JoinWithinCapacityFunc != nil {
		return m.JoinWithinCapacityFunc(ctx, entry, maxUsers, cutoff)
	}
	return nil
}

func (m *MockPresenceRepository) HasCapacity(ctx context.Context, boardCode, userID string, maxUsers int, cutoff time.Time) (bool, error) {
	if m.HasCapacityFunc != nil {
		return m.HasCapacityFunc(ctx, boardCode, userID, maxUsers, cutoff)
	}
	return true, nil
}

func (m *MockPresenceRepository) Remove(ctx context.Context, boardCode, userID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, boardCode, userID)
	}
	return nil
}

func (m *MockPresenceRepository) FindLive(ctx context.Context, boardCode string, cutoff time.Time) ([]domain.Presence, error) {
	if m.FindLiveFunc != nil {
		return m.FindLiveFunc(ctx, boardCode, cutoff)
	}
	return []domain.Presence{}, nil
}

func (m *MockPresenceRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, cutoff)
	}
	return 0, nil
}

func (m *MockPresenceRepository) CountLiveBoardsByCategory(ctx context.Context, userID string, category domain.Category, cutoff time.Time) (int64, error) {
	if m.CountLiveBoardsByCategoryFunc != nil {
		return m.CountLiveBoardsByCategoryFunc(ctx, userID, category, cutoff)
	}
	return 0, nil
}

// MockBoardCache is a mock implementation of BoardCache
type MockBoardCache struct {
	GetBoardFunc func(ctx context.Context, code string) (*domain.Board, error)
	GetNotesFunc func(ctx context.Context, code string) ([]domain.Note, error)

	mu          sync.Mutex
	put         []string
	invalidated []string
}

func (m *MockBoardCache) GetBoard(ctx context.Context, code string) (*domain.Board, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockBoardCache) GetNotes(ctx context.Context, code string) ([]domain.Note, error) {
	if m.GetNotesFunc != nil {
		return m.GetNotesFunc(ctx, code)
	}
	return []domain.Note{}, nil
}

func (m *MockBoardCache) PutBoard(_ context.Context, board *domain.Board) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put = append(m.put, board.Code)
}

func (m *MockBoardCache) InvalidateNotes(_ context.Context, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, code)
}

// recordingPublisher keeps every published event in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []domain.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ChangeEvent(nil), p.events...)
}
