package domain

import "time"

// Participant is the durable record that a user has joined a board.
// It outlives presence and is removed only by an explicit permanent leave.
type Participant struct {
	BoardCode  string    `gorm:"type:varchar(10);primaryKey;index:idx_participants_board_code" json:"boardCode"`
	UserID     string    `gorm:"type:varchar(50);primaryKey;index:idx_participants_user_id" json:"userId"`
	UserName   string    `gorm:"type:varchar(100);not null" json:"userName"`
	JoinedAt   time.Time `json:"joinedAt"`
	LastAccess time.Time `json:"lastAccess"`
	Board      Board     `gorm:"foreignKey:BoardCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// ParticipantBoard is a board the user belongs to, with the user's own membership data.
type ParticipantBoard struct {
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Category        Category  `json:"category"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	CreatedAt       time.Time `json:"createdAt"`
	LastAccess      time.Time `json:"lastAccess"`
	UserName        string    `json:"userName"`
}
