package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sticky-board-api/internal/domain"
)

// ErrCapacityReached is returned when a new user would exceed the board's live user limit.
var ErrCapacityReached = errors.New("board capacity reached")

// PresenceRepository defines the interface for ephemeral presence entries
type PresenceRepository interface {
	// JoinWithinCapacity upserts the entry unless maxUsers distinct users with
	// last_seen after cutoff already exist and this user has no entry yet.
	JoinWithinCapacity(ctx context.Context, entry *domain.Presence, maxUsers int, cutoff time.Time) error
	// HasCapacity reports whether userID could join without exceeding maxUsers.
	HasCapacity(ctx context.Context, boardCode, userID string, maxUsers int, cutoff time.Time) (bool, error)
	Remove(ctx context.Context, boardCode, userID string) error
	// FindLive lists entries seen after cutoff, earliest joiner first.
	FindLive(ctx context.Context, boardCode string, cutoff time.Time) ([]domain.Presence, error)
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
	CountLiveBoardsByCategory(ctx context.Context, userID string, category domain.Category, cutoff time.Time) (int64, error)
}

type presenceRepositoryImpl struct {
	db *gorm.DB
}

// NewPresenceRepository creates a new instance of PresenceRepository
func NewPresenceRepository(db *gorm.DB) PresenceRepository {
	return &presenceRepositoryImpl{db: db}
}

func (r *presenceRepositoryImpl) JoinWithinCapacity(ctx context.Context, entry *domain.Presence, maxUsers int, cutoff time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			// Serializes concurrent joins on the same board.
			var board domain.Board
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("code").
				Where("code = ?", entry.BoardCode).
				First(&board).Error; err != nil {
				return err
			}
		}

		ok, err := hasCapacity(tx, entry.BoardCode, entry.UserID, maxUsers, cutoff)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCapacityReached
		}

		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "board_code"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "last_seen"}),
		}).Create(entry).Error
	})
}

func (r *presenceRepositoryImpl) HasCapacity(ctx context.Context, boardCode, userID string, maxUsers int, cutoff time.Time) (bool, error) {
	return hasCapacity(r.db.WithContext(ctx), boardCode, userID, maxUsers, cutoff)
}

func hasCapacity(tx *gorm.DB, boardCode, userID string, maxUsers int, cutoff time.Time) (bool, error) {
	var existing int64
	if err := tx.Model(&domain.Presence{}).
		Where("board_code = ? AND user_id = ?", boardCode, userID).
		Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return true, nil
	}

	var live int64
	if err := tx.Model(&domain.Presence{}).
		Where("board_code = ? AND last_seen > ?", boardCode, cutoff).
		Distinct("user_id").
		Count(&live).Error; err != nil {
		return false, err
	}
	return live < int64(maxUsers), nil
}

func (r *presenceRepositoryImpl) Remove(ctx context.Context, boardCode, userID string) error {
	return r.db.WithContext(ctx).
		Where("board_code = ? AND user_id = ?", boardCode, userID).
		Delete(&domain.Presence{}).Error
}

func (r *presenceRepositoryImpl) FindLive(ctx context.Context, boardCode string, cutoff time.Time) ([]domain.Presence, error) {
	entries := make([]domain.Presence, 0)
	if err := r.db.WithContext(ctx).
		Where("board_code = ? AND last_seen > ?", boardCode, cutoff).
		Order("joined_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *presenceRepositoryImpl) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("last_seen < ?", cutoff).
		Delete(&domain.Presence{})
	return res.RowsAffected, res.Error
}

func (r *presenceRepositoryImpl) CountLiveBoardsByCategory(ctx context.Context, userID string, category domain.Category, cutoff time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("presences AS pr").
		Joins("INNER JOIN boards AS b ON b.code = pr.board_code").
		Where("pr.user_id = ? AND b.category = ? AND pr.last_seen > ?", userID, category, cutoff).
		Distinct("pr.board_code").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
