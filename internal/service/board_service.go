package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/metrics"
	"sticky-board-api/internal/repository"
	"sticky-board-api/internal/response"
)

const bcryptCost = 10

// BoardCache is the read-through cache the services read boards and notes from.
type BoardCache interface {
	GetBoard(ctx context.Context, code string) (*domain.Board, error)
	GetNotes(ctx context.Context, code string) ([]domain.Note, error)
	PutBoard(ctx context.Context, board *domain.Board)
	InvalidateNotes(ctx context.Context, code string)
}

// BoardService defines the interface for board business logic
type BoardService interface {
	CheckBoard(ctx context.Context, code string) (*dto.CheckBoardResponse, error)
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error)
	AccessBoard(ctx context.Context, code string, req *dto.AccessBoardRequest) (*domain.Board, error)
	GetBoard(ctx context.Context, code string) (*domain.Board, error)
	GetUserBoards(ctx context.Context, userID string) ([]domain.ParticipantBoard, error)
}

type boardServiceImpl struct {
	boardRepo       repository.BoardRepository
	participantRepo repository.ParticipantRepository
	presenceRepo    repository.PresenceRepository
	cache           BoardCache
	generateCode    CodeGenerator
	presenceWindow  time.Duration
	now             func() time.Time
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	participantRepo repository.ParticipantRepository,
	presenceRepo repository.PresenceRepository,
	cache BoardCache,
	generateCode CodeGenerator,
	presenceWindow time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	if generateCode == nil {
		generateCode = NewRandomCodeGenerator()
	}
	return &boardServiceImpl{
		boardRepo:       boardRepo,
		participantRepo: participantRepo,
		presenceRepo:    presenceRepo,
		cache:           cache,
		generateCode:    generateCode,
		presenceWindow:  presenceWindow,
		now:             func() time.Time { return time.Now().UTC() },
		metrics:         m,
		logger:          logger,
	}
}

func (s *boardServiceImpl) CheckBoard(ctx context.Context, code string) (*dto.CheckBoardResponse, error) {
	code = normalizeCode(code)
	// The cached board has no hash, so ask the store.
	board, err := s.boardRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to check board")
	}
	return &dto.CheckBoardResponse{Code: board.Code, RequiresPassword: board.RequiresPassword()}, nil
}

func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error) {
	name := strings.TrimSpace(req.Name)
	creatorName := strings.TrimSpace(req.CreatorName)
	userID := strings.TrimSpace(req.UserID)
	if name == "" || creatorName == "" || userID == "" {
		return nil, validationError("name, category, creatorName and userId are required")
	}
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return nil, validationError(fmt.Sprintf("unknown category %q", req.Category))
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return nil, validationError("password is too long")
			}
			return nil, internalError("Failed to hash password", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	board := &domain.Board{
		Code:            code,
		Name:            name,
		Category:        category,
		PasswordHash:    passwordHash,
		Creator:         creatorName,
		BorderColor:     category.BorderPalette().Snap(req.BorderColor),
		BackgroundColor: category.BackgroundPalette().Snap(req.BackgroundColor),
		MaxUsers:        category.MaxUsers(),
		CreatedAt:       now,
		LastActivity:    now,
	}
	creator := &domain.Participant{
		UserID:     userID,
		UserName:   creatorName,
		JoinedAt:   now,
		LastAccess: now,
	}

	if err := s.boardRepo.CreateWithCreator(ctx, board, creator); err != nil {
		return nil, internalError("Failed to create board", err)
	}

	s.cache.PutBoard(ctx, board)
	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_code", board.Code),
		zap.String("category", string(category)),
		zap.Bool("password_protected", passwordHash != nil))

	public := board.Public()
	return &public, nil
}

func (s *boardServiceImpl) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.generateCode()
		exists, err := s.boardRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", internalError("Failed to allocate board code", err)
		}
		if !exists {
			return code, nil
		}
		s.logger.Debug("Board code collision", zap.String("code", code), zap.Int("attempt", attempt+1))
	}
	return "", response.NewAppError(response.ErrCodeInternal, "Failed to allocate board code",
		fmt.Sprintf("no free code after %d attempts", maxCodeAttempts))
}

func (s *boardServiceImpl) AccessBoard(ctx context.Context, code string, req *dto.AccessBoardRequest) (*domain.Board, error) {
	userName := strings.TrimSpace(req.UserName)
	userID := strings.TrimSpace(req.UserID)
	if userName == "" || userID == "" {
		return nil, validationError("userName and userId are required")
	}
	code = normalizeCode(code)

	board, err := s.boardRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}

	if board.RequiresPassword() {
		if req.Password == nil || *req.Password == "" {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Password required", "")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*board.PasswordHash), []byte(*req.Password)); err != nil {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Incorrect password", "")
		}
	}

	now := s.now()
	ok, err := s.presenceRepo.HasCapacity(ctx, code, userID, board.MaxUsers, now.Add(-s.presenceWindow))
	if err != nil {
		return nil, internalError("Failed to check board capacity", err)
	}
	if !ok {
		return nil, boardFullError(board.MaxUsers)
	}

	if err := s.participantRepo.Upsert(ctx, &domain.Participant{
		BoardCode:  code,
		UserID:     userID,
		UserName:   userName,
		JoinedAt:   now,
		LastAccess: now,
	}); err != nil {
		return nil, internalError("Failed to record participant", err)
	}

	if err := s.boardRepo.TouchActivity(ctx, code, now); err != nil {
		s.logger.Warn("Failed to update board activity", zap.String("board_code", code), zap.Error(err))
	}

	public := board.Public()
	public.LastActivity = now
	return &public, nil
}

func (s *boardServiceImpl) GetBoard(ctx context.Context, code string) (*domain.Board, error) {
	board, err := s.cache.GetBoard(ctx, normalizeCode(code))
	if err != nil {
		return nil, translate(err, errBoardNotFound, "Failed to load board")
	}
	return board, nil
}

func (s *boardServiceImpl) GetUserBoards(ctx context.Context, userID string) ([]domain.ParticipantBoard, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, validationError("userId is required")
	}
	boards, err := s.participantRepo.FindBoardsByUser(ctx, userID)
	if err != nil {
		return nil, internalError("Failed to list boards", err)
	}
	return boards, nil
}

func boardFullError(maxUsers int) error {
	return response.NewAppError(response.ErrCodeBoardFull, fmt.Sprintf("board is full (max %d users)", maxUsers), "")
}
