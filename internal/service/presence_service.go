package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/repository"
)

// PresenceService defines the interface for who is currently on a board
type PresenceService interface {
	// Join marks the user present, subject to the board's capacity. It also serves as heartbeat.
	Join(ctx context.Context, boardCode, userID, name string) (*domain.Board, error)
	Leave(ctx context.Context, boardCode, userID string) error
	Roster(ctx context.Context, boardCode string) ([]domain.Presence, error)
	// SweepExpired removes entries not refreshed within the inactivity window.
	SweepExpired(ctx context.Context) (int64, error)
	UserPanelCount(ctx context.Context, boardCode, userID string) (*dto.UserPanelCountResponse, error)
}

type presenceServiceImpl struct {
	presenceRepo repository.PresenceRepository
	cache        BoardCache
	window       time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

// NewPresenceService creates a new instance of PresenceService
func NewPresenceService(presenceRepo repository.PresenceRepository, cache BoardCache, window time.Duration, logger *zap.Logger) PresenceService {
	return &presenceServiceImpl{
		presenceRepo: presenceRepo,
		cache:        cache,
		window:       window,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

func (s *presenceServiceImpl) cutoff() time.Time {
	return s.now().Add(-s.window)
}

func (s *presenceServiceImpl) Join(ctx context.Context, boardCode, userID, name string) (*domain.Board, error) {
	code := normalizeCode(boardCode)
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if code == "" || userID == "" || name == "" {
		return nil, validationError("boardCode, userId and name are required")
	}

	board, err := s.cache.GetBoard(ctx, code)
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}

	now := s.now()
	entry := &domain.Presence{
		BoardCode: code,
		UserID:    userID,
		Name:      name,
		JoinedAt:  now,
		LastSeen:  now,
	}
	if err := s.presenceRepo.JoinWithinCapacity(ctx, entry, board.MaxUsers, now.Add(-s.window)); err != nil {
		if errors.Is(err, repository.ErrCapacityReached) {
			return nil, boardFullError(board.MaxUsers)
		}
		return nil, translate(err, errBoardNotFound, "Failed to record presence")
	}
	return board, nil
}

func (s *presenceServiceImpl) Leave(ctx context.Context, boardCode, userID string) error {
	code := normalizeCode(boardCode)
	userID = strings.TrimSpace(userID)
	if code == "" || userID == "" {
		return validationError("boardCode and userId are required")
	}
	if err := s.presenceRepo.Remove(ctx, code, userID); err != nil {
		return internalError("Failed to remove presence", err)
	}
	return nil
}

func (s *presenceServiceImpl) Roster(ctx context.Context, boardCode string) ([]domain.Presence, error) {
	entries, err := s.presenceRepo.FindLive(ctx, normalizeCode(boardCode), s.cutoff())
	if err != nil {
		return nil, internalError("Failed to load roster", err)
	}
	return entries, nil
}

func (s *presenceServiceImpl) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.presenceRepo.DeleteExpired(ctx, s.cutoff())
	if err != nil {
		return 0, internalError("Failed to sweep presence", err)
	}
	return removed, nil
}

func (s *presenceServiceImpl) UserPanelCount(ctx context.Context, boardCode, userID string) (*dto.UserPanelCountResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, validationError("userId is required")
	}
	board, err := s.cache.GetBoard(ctx, normalizeCode(boardCode))
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}
	count, err := s.presenceRepo.CountLiveBoardsByCategory(ctx, userID, board.Category, s.cutoff())
	if err != nil {
		return nil, internalError("Failed to count boards", err)
	}
	return &dto.UserPanelCountResponse{Count: count, Category: string(board.Category)}, nil
}
