package dto

import "time"

// CreateBoardRequest represents the request to create a board
// @Description The creator is recorded as the first participant
type CreateBoardRequest struct {
	Name            string  `json:"name" binding:"required,max=255" example:"주말 모임"`
	Category        string  `json:"category" binding:"required" enums:"friends,couple" example:"friends"`
	CreatorName     string  `json:"creatorName" binding:"required,max=100" example:"alice"`
	UserID          string  `json:"userId" binding:"required,max=50" example:"user-1a2b3c"`
	Password        *string `json:"password,omitempty" example:"secret"`
	BorderColor     string  `json:"borderColor,omitempty" example:"#9EC6F3"`
	BackgroundColor string  `json:"backgroundColor,omitempty" example:"#FBFBFB"`
}

// AccessBoardRequest represents the request to enter a board
type AccessBoardRequest struct {
	UserName string  `json:"userName" binding:"required,max=100" example:"bob"`
	UserID   string  `json:"userId" binding:"required,max=50" example:"user-4d5e6f"`
	Password *string `json:"password,omitempty" example:"secret"`
}

// CheckBoardResponse tells the client whether to prompt for a password
type CheckBoardResponse struct {
	Code             string `json:"code" example:"AB12CD"`
	RequiresPassword bool   `json:"requiresPassword" example:"false"`
}

// BoardResponse is a board as returned to clients
type BoardResponse struct {
	Code            string    `json:"code" example:"AB12CD"`
	Name            string    `json:"name" example:"주말 모임"`
	Category        string    `json:"category" example:"friends"`
	Creator         string    `json:"creator" example:"alice"`
	BorderColor     string    `json:"borderColor" example:"#9EC6F3"`
	BackgroundColor string    `json:"backgroundColor" example:"#FBFBFB"`
	MaxUsers        int       `json:"maxUsers" example:"15"`
	CreatedAt       time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	LastActivity    time.Time `json:"lastActivity" example:"2024-01-15T10:30:00Z"`
}

// UserPanelCountResponse counts the live boards of one category a user is on
type UserPanelCountResponse struct {
	Count    int64  `json:"count" example:"1"`
	Category string `json:"category" example:"couple"`
}
