package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sticky-board-api/internal/domain"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	// FindByBoard lists a board's notes newest first.
	FindByBoard(ctx context.Context, boardCode string) ([]domain.Note, error)
	UpdatePosition(ctx context.Context, id string, x, y int) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteRepositoryImpl struct {
	db *gorm.DB
}

// NewNoteRepository creates a new instance of NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepositoryImpl{db: db}
}

func (r *noteRepositoryImpl) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(note).Error
}

// FindByID returns gorm.ErrRecordNotFound when the note does not exist
func (r *noteRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	var note domain.Note
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepositoryImpl) FindByBoard(ctx context.Context, boardCode string) ([]domain.Note, error) {
	notes := make([]domain.Note, 0)
	if err := r.db.WithContext(ctx).
		Where("board_code = ?", boardCode).
		Order("created_at DESC").
		Order("id").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdatePosition moves the note and returns its new state, or gorm.ErrRecordNotFound.
func (r *noteRepositoryImpl) UpdatePosition(ctx context.Context, id string, x, y int) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Note{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"position_x": x, "position_y": y})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&note).Error
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete returns gorm.ErrRecordNotFound when nothing was removed
func (r *noteRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
