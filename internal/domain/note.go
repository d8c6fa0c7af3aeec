package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPosition is used for a coordinate the caller did not supply.
const DefaultPosition = 50

// Note is a movable sticky note on a board. A nil AuthorName marks an anonymous note.
type Note struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BoardCode  string    `gorm:"type:varchar(10);not null;index:idx_notes_board_code" json:"boardCode"`
	AuthorName *string   `gorm:"type:varchar(100)" json:"authorName"`
	AuthorID   string    `gorm:"type:varchar(50);not null;index:idx_notes_author_id" json:"authorId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Color      string    `gorm:"type:varchar(7);not null" json:"color"`
	PositionX  int       `gorm:"not null;default:50" json:"positionX"`
	PositionY  int       `gorm:"not null;default:50" json:"positionY"`
	CreatedAt  time.Time `gorm:"index:idx_notes_created_at" json:"createdAt"`
}

// TableName specifies the table name for Note
func (Note) TableName() string {
	return "notes"
}

// BeforeCreate assigns an id when the caller did not.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// IsAnonymous reports whether the note was written without an author name.
func (n *Note) IsAnonymous() bool {
	return n.AuthorName == nil || *n.AuthorName == ""
}
