package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"sticky-board-api/internal/response"
)

var (
	errBoardNotFound = response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
	errNoteNotFound  = response.NewAppError(response.ErrCodeNotFound, "Note not found", "")
)

func validationError(message string) error {
	return response.NewAppError(response.ErrCodeValidation, message, "")
}

func internalError(message string, err error) error {
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}

// translate maps a not-found store error to notFound and anything else to an internal error.
func translate(err error, notFound error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return internalError(message, err)
}

// normalizeCode uppercases and trims a board code from a URL or frame.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
