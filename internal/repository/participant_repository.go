package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sticky-board-api/internal/domain"
)

// ParticipantRepository defines the interface for durable board membership
type ParticipantRepository interface {
	// Upsert inserts the membership or refreshes user_name and last_access, keeping joined_at.
	Upsert(ctx context.Context, participant *domain.Participant) error
	// Remove deletes the membership together with any presence entry.
	Remove(ctx context.Context, boardCode, userID string) error
	// FindBoardsByUser lists the user's boards, most recently accessed first.
	FindBoardsByUser(ctx context.Context, userID string) ([]domain.ParticipantBoard, error)
}

type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

func upsertParticipant(tx *gorm.DB, participant *domain.Participant) error {
	return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "board_code"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_name", "last_access"}),
	}).Create(participant).Error
}

func (r *participantRepositoryImpl) Upsert(ctx context.Context, participant *domain.Participant) error {
	return upsertParticipant(r.db.WithContext(ctx), participant)
}

func (r *participantRepositoryImpl) Remove(ctx context.Context, boardCode, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_code = ? AND user_id = ?", boardCode, userID).
			Delete(&domain.Participant{}).Error; err != nil {
			return err
		}
		return tx.Where("board_code = ? AND user_id = ?", boardCode, userID).
			Delete(&domain.Presence{}).Error
	})
}

func (r *participantRepositoryImpl) FindBoardsByUser(ctx context.Context, userID string) ([]domain.ParticipantBoard, error) {
	boards := make([]domain.ParticipantBoard, 0)
	if err := r.db.WithContext(ctx).
		Table("boards AS b").
		Select("b.code, b.name, b.category, b.border_color, b.background_color, b.created_at, p.last_access, p.user_name").
		Joins("INNER JOIN participants AS p ON p.board_code = b.code").
		Where("p.user_id = ?", userID).
		Order("p.last_access DESC").
		Scan(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}
