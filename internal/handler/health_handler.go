package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ConnectionCounter reports open live connections.
type ConnectionCounter interface {
	Connections() int
}

type HealthHandler struct {
	db          *gorm.DB
	redis       *redis.Client
	connections ConnectionCounter
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, connections ConnectionCounter) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redis:       redisClient,
		connections: connections,
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sticky-board-service",
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  데이터베이스와 Redis 연결을 확인합니다
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	connections := make(map[string]string)

	// Check database
	sqlDB, err := h.db.DB()
	if err != nil {
		connections["database"] = "error: " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		connections["database"] = "error: " + err.Error()
	} else {
		connections["database"] = "connected"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			connections["redis"] = "error: " + err.Error()
		} else {
			connections["redis"] = "connected"
		}
	} else {
		connections["redis"] = "not configured"
	}

	hasError := false
	for _, status := range connections {
		if status != "connected" && status != "not configured" {
			hasError = true
			break
		}
	}

	status := http.StatusOK
	statusText := "ready"
	if hasError {
		status = http.StatusServiceUnavailable
		statusText = "not ready"
	}

	body := gin.H{
		"status":      statusText,
		"connections": connections,
	}
	if h.connections != nil {
		body["wsClients"] = h.connections.Connections()
	}
	c.JSON(status, body)
}
