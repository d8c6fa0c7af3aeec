package domain

import (
	"time"
)

// CodeAlphabet is the set of characters board codes are drawn from.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of a board code.
const CodeLength = 6

// Board is a shared surface of notes identified by a short code.
// PasswordHash is never serialized, so a cached or returned Board cannot leak it.
type Board struct {
	Code            string    `gorm:"type:varchar(10);primaryKey" json:"code"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Category        Category  `gorm:"type:varchar(20);not null" json:"category"`
	PasswordHash    *string   `gorm:"type:varchar(255)" json:"-"`
	Creator         string    `gorm:"type:varchar(100);not null" json:"creator"`
	BorderColor     string    `gorm:"type:varchar(7);not null" json:"borderColor"`
	BackgroundColor string    `gorm:"type:varchar(7);not null" json:"backgroundColor"`
	MaxUsers        int       `gorm:"not null" json:"maxUsers"`
	CreatedAt       time.Time `json:"createdAt"`
	LastActivity    time.Time `json:"lastActivity"`
	Notes           []Note    `gorm:"foreignKey:BoardCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// RequiresPassword reports whether access needs a password.
func (b *Board) RequiresPassword() bool {
	return b.PasswordHash != nil && *b.PasswordHash != ""
}

// Public returns a copy without the password hash.
func (b Board) Public() Board {
	b.PasswordHash = nil
	b.Notes = nil
	return b
}

// IsValidCode reports whether code has the board code shape.
func IsValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
