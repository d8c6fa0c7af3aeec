package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/response"
	"sticky-board-api/internal/service"
)

type PresenceHandler struct {
	presenceService service.PresenceService
	logger          *zap.Logger
}

func NewPresenceHandler(presenceService service.PresenceService, logger *zap.Logger) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
		logger:          logger,
	}
}

// Heartbeat godoc
// @Summary      접속 표시 (하트비트)
// @Description  사용자를 Board에 접속 중으로 표시하거나 마지막 활동 시각을 갱신합니다
// @Tags         presence
// @Accept       json
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        request body dto.PresenceRequest true "접속 요청"
// @Success      201 {object} response.SuccessResponse "갱신 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "정원 초과 (BOARD_FULL)"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/presence [post]
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	var req dto.PresenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "name and userId are required")
		return
	}

	if _, err := h.presenceService.Join(c.Request.Context(), c.Param("code"), req.UserID, req.Name); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, nil)
}

// GetRoster godoc
// @Summary      현재 접속자 목록
// @Description  비활성 시간을 넘지 않은 접속자를 입장 순으로 반환합니다
// @Tags         presence
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.PresenceResponse} "조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/presence [get]
func (h *PresenceHandler) GetRoster(c *gin.Context) {
	entries, err := h.presenceService.Roster(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	roster := make([]dto.PresenceResponse, 0, len(entries))
	for _, e := range entries {
		roster = append(roster, dto.PresenceResponse{UserID: e.UserID, Name: e.Name, JoinedAt: e.JoinedAt})
	}
	response.SendSuccess(c, http.StatusOK, roster)
}

// Leave godoc
// @Summary      접속 기록 제거
// @Tags         presence
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        userId path string true "사용자 ID"
// @Success      204 "제거 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/presence/{userId} [delete]
func (h *PresenceHandler) Leave(c *gin.Context) {
	if err := h.presenceService.Leave(c.Request.Context(), c.Param("code"), c.Param("userId")); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UserPanelCount godoc
// @Summary      같은 카테고리의 접속 중 Board 수
// @Description  사용자가 현재 접속 중인, 이 Board와 같은 카테고리의 Board 수를 반환합니다
// @Tags         presence
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        userId query string true "사용자 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UserPanelCountResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "userId 누락"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/user-panel-count [get]
func (h *PresenceHandler) UserPanelCount(c *gin.Context) {
	result, err := h.presenceService.UserPanelCount(c.Request.Context(), c.Param("code"), c.Query("userId"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
