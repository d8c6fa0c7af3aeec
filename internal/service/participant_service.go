package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"sticky-board-api/internal/repository"
)

// ParticipantService defines the interface for durable membership changes
type ParticipantService interface {
	// RemoveParticipant permanently drops the user from the board, presence included.
	RemoveParticipant(ctx context.Context, boardCode, userID string) error
}

type participantServiceImpl struct {
	participantRepo repository.ParticipantRepository
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(participantRepo repository.ParticipantRepository, logger *zap.Logger) ParticipantService {
	return &participantServiceImpl{participantRepo: participantRepo, logger: logger}
}

func (s *participantServiceImpl) RemoveParticipant(ctx context.Context, boardCode, userID string) error {
	code := normalizeCode(boardCode)
	userID = strings.TrimSpace(userID)
	if code == "" || userID == "" {
		return validationError("board code and userId are required")
	}
	if err := s.participantRepo.Remove(ctx, code, userID); err != nil {
		return internalError("Failed to remove participant", err)
	}
	s.logger.Info("Participant removed", zap.String("board_code", code), zap.String("user_id", userID))
	return nil
}
