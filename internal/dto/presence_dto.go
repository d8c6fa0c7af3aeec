package dto

import "time"

// PresenceRequest marks a user present on a board or refreshes the mark
type PresenceRequest struct {
	Name   string `json:"name" binding:"required,max=100" example:"bob"`
	UserID string `json:"userId" binding:"required,max=50" example:"user-4d5e6f"`
}

// PresenceResponse is one entry of a board roster
type PresenceResponse struct {
	UserID   string    `json:"userId" example:"user-4d5e6f"`
	Name     string    `json:"name" example:"bob"`
	JoinedAt time.Time `json:"joinedAt" example:"2024-01-15T10:30:00Z"`
}
