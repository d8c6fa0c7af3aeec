package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sticky-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// CreateWithCreator stores the board and its creator's membership in one transaction.
	CreateWithCreator(ctx context.Context, board *domain.Board, creator *domain.Participant) error
	FindByCode(ctx context.Context, code string) (*domain.Board, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	TouchActivity(ctx context.Context, code string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

func (r *boardRepositoryImpl) CreateWithCreator(ctx context.Context, board *domain.Board, creator *domain.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(board).Error; err != nil {
			return err
		}
		if creator == nil {
			return nil
		}
		creator.BoardCode = board.Code
		return upsertParticipant(tx, creator)
	})
}

// FindByCode returns gorm.ErrRecordNotFound when no board has the code
func (r *boardRepositoryImpl) FindByCode(ctx context.Context, code string) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *boardRepositoryImpl) TouchActivity(ctx context.Context, code string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("code = ?", code).
		Update("last_activity", at).Error
}

func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error
	return count, err
}
