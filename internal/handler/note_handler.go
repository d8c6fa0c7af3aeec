package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/response"
	"sticky-board-api/internal/service"
)

type NoteHandler struct {
	noteService service.NoteService
	logger      *zap.Logger
}

func NewNoteHandler(noteService service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// GetNotes godoc
// @Summary      Board의 Note 목록
// @Description  최신 Note가 먼저 오도록 정렬해 반환합니다
// @Tags         notes
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Success      200 {object} response.SuccessResponse{data=[]domain.Note} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/notes [get]
func (h *NoteHandler) GetNotes(c *gin.Context) {
	notes, err := h.noteService.GetNotes(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, notes)
}

// CreateNote godoc
// @Summary      Note 작성
// @Description  Board에 Note를 추가하고 연결된 모든 클라이언트에 NEW_NOTE를 보냅니다
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        request body dto.CreateNoteRequest true "Note 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=domain.Note} "작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 익명 불가"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, note)
}

// MoveNote godoc
// @Summary      Note 이동
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        noteId path string true "Note ID (UUID)"
// @Param        request body dto.MoveNoteRequest true "새 위치"
// @Success      200 {object} response.SuccessResponse{data=domain.Note} "이동 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Note를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /notes/{noteId}/position [patch]
func (h *NoteHandler) MoveNote(c *gin.Context) {
	var req dto.MoveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "positionX and positionY are required")
		return
	}

	note, err := h.noteService.MoveNote(c.Request.Context(), c.Param("noteId"), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, note)
}

// DeleteNote godoc
// @Summary      Note 삭제
// @Description  작성자 본인, 또는 익명 Note가 허용된 Board의 익명 Note만 삭제할 수 있습니다
// @Tags         notes
// @Produce      json
// @Param        noteId path string true "Note ID (UUID)"
// @Param        authorId query string false "요청자 ID"
// @Success      204 "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "삭제 권한 없음"
// @Failure      404 {object} response.ErrorResponse "Note를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /notes/{noteId} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.noteService.DeleteNote(c.Request.Context(), c.Param("noteId"), c.Query("authorId")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
