package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/response"
	"sticky-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// CheckBoard godoc
// @Summary      Board 존재 및 비밀번호 여부 확인
// @Description  입장 전에 Board가 있는지, 비밀번호가 필요한지 확인합니다
// @Tags         boards
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Success      200 {object} response.SuccessResponse{data=dto.CheckBoardResponse} "확인 성공"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/check [get]
func (h *BoardHandler) CheckBoard(c *gin.Context) {
	result, err := h.boardService.CheckBoard(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// CreateBoard godoc
// @Summary      Board 생성
// @Description  새 Board를 만들고 생성자를 첫 참여자로 등록합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "Board 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, toBoardResponse(board))
}

// AccessBoard godoc
// @Summary      Board 입장
// @Description  비밀번호와 정원을 확인한 뒤 사용자를 참여자로 기록합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Param        request body dto.AccessBoardRequest true "입장 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "입장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "비밀번호 필요 또는 불일치"
// @Failure      403 {object} response.ErrorResponse "정원 초과 (BOARD_FULL)"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code}/access [post]
func (h *BoardHandler) AccessBoard(c *gin.Context) {
	var req dto.AccessBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.AccessBoard(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, toBoardResponse(board))
}

// GetBoard godoc
// @Summary      Board 조회
// @Tags         boards
// @Produce      json
// @Param        code path string true "Board 코드 (6자리)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "Board를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{code} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.boardService.GetBoard(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, toBoardResponse(board))
}

// GetUserBoards godoc
// @Summary      사용자의 Board 목록
// @Description  사용자가 참여한 Board를 최근 접속 순으로 조회합니다
// @Tags         boards
// @Produce      json
// @Param        userId path string true "사용자 ID"
// @Success      200 {object} response.SuccessResponse{data=[]domain.ParticipantBoard} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 사용자 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/{userId}/boards [get]
func (h *BoardHandler) GetUserBoards(c *gin.Context) {
	boards, err := h.boardService.GetUserBoards(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

func toBoardResponse(b *domain.Board) dto.BoardResponse {
	return dto.BoardResponse{
		Code:            b.Code,
		Name:            b.Name,
		Category:        string(b.Category),
		Creator:         b.Creator,
		BorderColor:     b.BorderColor,
		BackgroundColor: b.BackgroundColor,
		MaxUsers:        b.MaxUsers,
		CreatedAt:       b.CreatedAt,
		LastActivity:    b.LastActivity,
	}
}
