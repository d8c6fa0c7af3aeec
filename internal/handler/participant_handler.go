package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sticky-board-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
	logger             *zap.Logger
}

func NewParticipantHandler(participantService service.ParticipantService, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		logger:             logger,
	}
}

// RemoveParticipant godoc
// @Summary      Participant 영구 제거
// @Description  Board에서 참여자를 제거하고 현재 접속 기록도 함께 지웁니다
// @Tags         participants
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        userId path string true "사용자 ID"
// @Success      204 "제거 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/participants/{userId} [delete]
func (h *ParticipantHandler) RemoveParticipant(c *gin.Context) {
	err := h.participantService.RemoveParticipant(c.Request.Context(), c.Param("code"), c.Param("userId"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
