package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sticky-board-api/internal/domain"
	"sticky-board-api/internal/dto"
	"sticky-board-api/internal/response"
)

func decodeEnvelope(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	resp := decodeEnvelope(t, body)
	assert.Equal(t, false, resp["success"])
	return resp["error"].(map[string]interface{})["code"].(string)
}

func TestBoardHandler_CreateBoard(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockBoardService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "성공: Board 생성",
			requestBody: dto.CreateBoardRequest{
				Name: "주말 모임", Category: "friends", CreatorName: "alice", UserID: "u1",
			},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error) {
					return &domain.Board{Code: "AB12CD", Name: req.Name, Category: domain.CategoryFriends, MaxUsers: 15}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 필수 필드 누락",
			requestBody:    map[string]string{"name": "x"},
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name: "실패: 알 수 없는 카테고리",
			requestBody: dto.CreateBoardRequest{
				Name: "x", Category: "family", CreatorName: "alice", UserID: "u1",
			},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error) {
					return nil, response.NewAppError(response.ErrCodeValidation, "unknown category", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name: "실패: 처리되지 않은 에러",
			requestBody: dto.CreateBoardRequest{
				Name: "x", Category: "friends", CreatorName: "alice", UserID: "u1",
			},
			mockService: func(m *MockBoardService) {
				m.CreateBoardFunc = func(ctx context.Context, req *dto.CreateBoardRequest) (*domain.Board, error) {
					return nil, errors.New("boom")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockBoardService{}
			tt.mockService(mockService)
			h := NewBoardHandler(mockService, zap.NewNop())

			router := setupTestRouter()
			router.POST("/api/boards", h.CreateBoard)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/boards", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// When
			router.ServeHTTP(w, req)

			// Then
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, w.Body.Bytes()))
				return
			}
			data := decodeEnvelope(t, w.Body.Bytes())["data"].(map[string]interface{})
			assert.Equal(t, "AB12CD", data["code"])
			assert.NotContains(t, data, "passwordHash")
		})
	}
}

func TestBoardHandler_AccessBoardStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"성공", nil, http.StatusOK},
		{"비밀번호 필요", response.NewAppError(response.ErrCodeUnauthorized, "Password required", ""), http.StatusUnauthorized},
		{"정원 초과", response.NewAppError(response.ErrCodeBoardFull, "board is full (max 2 users)", ""), http.StatusForbidden},
		{"Board 없음", response.NewAppError(response.ErrCodeNotFound, "Board not found", ""), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockBoardService{
				AccessBoardFunc: func(ctx context.Context, code string, req *dto.AccessBoardRequest) (*domain.Board, error) {
					assert.Equal(t, "AB12CD", code)
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Board{Code: code}, nil
				},
			}
			h := NewBoardHandler(mockService, zap.NewNop())
			router := setupTestRouter()
			router.POST("/api/boards/:code/access", h.AccessBoard)

			body, _ := json.Marshal(dto.AccessBoardRequest{UserName: "bob", UserID: "u2"})
			req := httptest.NewRequest(http.MethodPost, "/api/boards/AB12CD/access", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBoardHandler_CheckBoard(t *testing.T) {
	mockService := &MockBoardService{
		CheckBoardFunc: func(ctx context.Context, code string) (*dto.CheckBoardResponse, error) {
			return &dto.CheckBoardResponse{Code: code, RequiresPassword: true}, nil
		},
	}
	h := NewBoardHandler(mockService, zap.NewNop())
	router := setupTestRouter()
	router.GET("/api/boards/:code/check", h.CheckBoard)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boards/AB12CD/check", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body.Bytes())["data"].(map[string]interface{})
	assert.Equal(t, true, data["requiresPassword"])
}

func TestBoardHandler_GetUserBoards(t *testing.T) {
	mockService := &MockBoardService{
		GetUserBoardsFunc: func(ctx context.Context, userID string) ([]domain.ParticipantBoard, error) {
			assert.Equal(t, "u1", userID)
			return []domain.ParticipantBoard{{Code: "AB12CD", UserName: "alice"}}, nil
		},
	}
	h := NewBoardHandler(mockService, zap.NewNop())
	router := setupTestRouter()
	router.GET("/api/users/:userId/boards", h.GetUserBoards)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1/boards", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w.Body.Bytes())["data"], 1)
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, mapErrorCodeToHTTPStatus(response.ErrCodeNotFound))
	assert.Equal(t, http.StatusBadRequest, mapErrorCodeToHTTPStatus(response.ErrCodeValidation))
	assert.Equal(t, http.StatusUnauthorized, mapErrorCodeToHTTPStatus(response.ErrCodeUnauthorized))
	assert.Equal(t, http.StatusForbidden, mapErrorCodeToHTTPStatus(response.ErrCodeForbidden))
	assert.Equal(t, http.StatusForbidden, mapErrorCodeToHTTPStatus(response.ErrCodeBoardFull))
	assert.Equal(t, http.StatusInternalServerError, mapErrorCodeToHTTPStatus(response.ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, mapErrorCodeToHTTPStatus("SOMETHING_ELSE"))
}
