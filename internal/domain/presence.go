package domain

import "time"

// Presence is the ephemeral record that a user is currently active on a board.
type Presence struct {
	BoardCode string    `gorm:"type:varchar(10);primaryKey;index:idx_presences_board_code" json:"boardCode"`
	UserID    string    `gorm:"type:varchar(50);primaryKey" json:"userId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	JoinedAt  time.Time `json:"joinedAt"`
	LastSeen  time.Time `gorm:"index:idx_presences_last_seen" json:"lastSeen"`
	Board     Board     `gorm:"foreignKey:BoardCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Presence
func (Presence) TableName() string {
	return "presences"
}

// ParticipantSummary identifies a user in join/leave events.
type ParticipantSummary struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}
