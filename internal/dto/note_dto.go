package dto

// CreateNoteRequest represents the request to add a note
// @Description authorName may be omitted on friends boards to post anonymously
// @Description positionX/positionY default to 50 when omitted
type CreateNoteRequest struct {
	Content    string  `json:"content" binding:"required" example:"금요일 7시!"`
	AuthorID   string  `json:"authorId" binding:"required,max=50" example:"user-1a2b3c"`
	AuthorName *string `json:"authorName,omitempty" example:"alice"`
	Color      string  `json:"color,omitempty" example:"#A8D8EA"`
	PositionX  *int    `json:"positionX,omitempty" example:"50"`
	PositionY  *int    `json:"positionY,omitempty" example:"50"`
}

// MoveNoteRequest represents the request to reposition a note
type MoveNoteRequest struct {
	PositionX *int `json:"positionX" binding:"required" example:"20"`
	PositionY *int `json:"positionY" binding:"required" example:"80"`
}
